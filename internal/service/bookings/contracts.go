package bookings

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SlotRepository интерфейс хранилища слотов расписания
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailableSlot, error)
}

// ServiceRepository интерфейс хранилища услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
