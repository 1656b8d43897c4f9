package get_booking

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, bookingID, userID int64, isAdmin bool) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
