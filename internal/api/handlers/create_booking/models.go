package create_booking

import (
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
	createBooking "github.com/m04kA/PGS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date       string   `json:"date"`      // "2025-10-15"
	StartTime  string   `json:"startTime"` // "10:00"
	ServiceID  int64    `json:"serviceId"`
	EmployeeID int64    `json:"employeeId"`
	DogBreed   *string  `json:"dogBreed,omitempty"`
	DogWeight  *float64 `json:"dogWeight,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"userId"`
	SlotID          int64    `json:"slotId"`
	ServiceID       int64    `json:"serviceId"`
	EmployeeID      int64    `json:"employeeId"`
	Date            string   `json:"date"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	ServiceType     string   `json:"serviceType"`
	ServicePrice    float64  `json:"servicePrice"`
	DurationMinutes int      `json:"durationMinutes"`
	DogBreed        *string  `json:"dogBreed,omitempty"`
	DogWeight       *float64 `json:"dogWeight,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Идентификатор пользователя берется из токена авторизации, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:     userID,
		Date:       bookingDate,
		StartTime:  startTime,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		DogBreed:   r.DogBreed,
		DogWeight:  r.DogWeight,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		SlotID:          resp.SlotID,
		ServiceID:       resp.ServiceID,
		EmployeeID:      resp.EmployeeID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		ServiceType:     resp.ServiceType,
		ServicePrice:    resp.ServicePrice,
		DurationMinutes: resp.DurationMinutes,
		DogBreed:        resp.DogBreed,
		DogWeight:       resp.DogWeight,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
