package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.EmployeeID <= 0 {
		return fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DogBreed != nil && len(*req.DogBreed) > domain.MaxDogBreedLength {
		return fmt.Errorf("%w: dogBreed is too long", ErrInvalidInput)
	}

	if req.DogWeight != nil && (*req.DogWeight <= 0 || *req.DogWeight > domain.MaxDogWeightKg) {
		return fmt.Errorf("%w: dogWeight must be in (0, %v]", ErrInvalidInput, domain.MaxDogWeightKg)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(date, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
