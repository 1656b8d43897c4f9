package slots

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// SlotRepository интерфейс хранилища слотов расписания
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error)
	List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
