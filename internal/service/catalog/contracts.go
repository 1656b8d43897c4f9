package catalog

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// EmployeeRepository интерфейс хранилища сотрудников
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
}

// ServiceRepository интерфейс хранилища услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
