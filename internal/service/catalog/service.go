package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	"github.com/m04kA/PGS-BookingService/internal/service/catalog/models"
)

// Service сервис справочника сотрудников и услуг
type Service struct {
	employeeRepo EmployeeRepository
	serviceRepo  ServiceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(employeeRepo EmployeeRepository, serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		logger:       logger,
	}
}

// CreateEmployee создает нового сотрудника
func (s *Service) CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.EmployeeResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	created, err := s.employeeRepo.Create(ctx, &domain.Employee{Name: req.Name})
	if err != nil {
		s.logger.Error("CreateEmployee: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEmployee - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEmployee: created employee id=%d", created.ID)
	return models.FromDomainEmployee(created), nil
}

// ListEmployees получает всех сотрудников
func (s *Service) ListEmployees(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListEmployees: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEmployees - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// CreateService создает новую услугу
// Если длительность не указана, используется значение по умолчанию
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	if req.ServiceType == "" {
		return nil, fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return nil, fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	duration := domain.DefaultServiceDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
		if duration < domain.MinServiceDurationMinutes || duration > domain.MaxServiceDurationMinutes {
			return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
		}
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		ServiceType:     req.ServiceType,
		Price:           req.Price,
		DurationMinutes: duration,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d type=%s", created.ID, created.ServiceType)
	return models.FromDomainService(created), nil
}

// ListServices получает все услуги
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}
