package create_employee

import (
	"context"

	"github.com/m04kA/PGS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
