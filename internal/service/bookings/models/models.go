package models

import (
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// BookingResponse бронирование в ответе API
// Дата, время и описание услуги подтягиваются из связанных сущностей
type BookingResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	SlotID          int64     `json:"slotId"`
	ServiceID       int64     `json:"serviceId"`
	EmployeeID      int64     `json:"employeeId"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	ServiceType     string    `json:"serviceType"`
	ServicePrice    float64   `json:"servicePrice"`
	DurationMinutes int       `json:"durationMinutes"`
	DogBreed        *string   `json:"dogBreed,omitempty"`
	DogWeight       *float64  `json:"dogWeight,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking собирает ответ из бронирования и связанных слота и услуги
func FromDomainBooking(b *domain.Booking, slot *domain.AvailableSlot, service *domain.Service) *BookingResponse {
	resp := &BookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		SlotID:     b.SlotID,
		ServiceID:  b.ServiceID,
		EmployeeID: b.EmployeeID,
		DogBreed:   b.DogBreed,
		DogWeight:  b.DogWeight,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if slot != nil {
		resp.Date = slot.Date.Format(domain.DateFormat)
		resp.Time = slot.Time.String()
	}
	if service != nil {
		resp.ServiceType = service.ServiceType
		resp.ServicePrice = service.Price
		resp.DurationMinutes = service.DurationMinutes
	}

	return resp
}
