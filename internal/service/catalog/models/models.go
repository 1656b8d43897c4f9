package models

import (
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// CreateEmployeeRequest запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name string `json:"name"`
}

// EmployeeResponse сотрудник в ответе API
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeListResponse список сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	ServiceType     string  `json:"serviceType"`
	Price           float64 `json:"price"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
}

// ServiceResponse услуга в ответе API
type ServiceResponse struct {
	ID              int64     `json:"id"`
	ServiceType     string    `json:"serviceType"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainEmployee конвертирует доменного сотрудника в ответ API
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FromDomainEmployeeList конвертирует список доменных сотрудников
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{
		Employees: make([]EmployeeResponse, 0, len(employees)),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, *FromDomainEmployee(e))
	}
	return resp
}

// FromDomainService конвертирует доменную услугу в ответ API
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		ServiceType:     s.ServiceType,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список доменных услуг
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}
	for _, svc := range services {
		resp.Services = append(resp.Services, *FromDomainService(svc))
	}
	return resp
}
