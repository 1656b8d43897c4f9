package list_employees

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListEmployees(ctx context.Context) (*models.EmployeeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
