package list_users

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/service/users/models"
)

type UsersService interface {
	List(ctx context.Context) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
