package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	FindByDate(ctx context.Context, date time.Time, bookedOnly bool) ([]*domain.AvailableSlot, error)
	FindByDateTime(ctx context.Context, date time.Time, t types.TimeString) (*domain.AvailableSlot, error)
	Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	MarkBooked(ctx context.Context, id int64, userID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
