package domain

import "time"

// Booking подтвержденное бронирование услуги груминга
// Всегда ссылается на слот, помеченный занятым; после создания не изменяется
type Booking struct {
	ID         int64
	UserID     int64
	SlotID     int64 // занятый AvailableSlot
	ServiceID  int64
	EmployeeID int64

	// Данные о собаке (опциональные, заполняются клиентом)
	DogBreed  *string
	DogWeight *float64 // кг

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID *int64 // бронирования конкретного пользователя (nil - все)
}
