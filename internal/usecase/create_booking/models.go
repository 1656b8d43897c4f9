package create_booking

import (
	"time"

	"github.com/m04kA/PGS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // ID пользователя
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала слота (например, "10:00:00")
	ServiceID  int64            // ID услуги
	EmployeeID int64            // ID сотрудника
	DogBreed   *string          // Порода собаки (опционально)
	DogWeight  *float64         // Вес собаки в кг (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64            // ID созданного бронирования
	UserID     int64            // ID пользователя
	SlotID     int64            // ID занятого слота
	ServiceID  int64            // ID услуги
	EmployeeID int64            // ID сотрудника
	Date       time.Time        // Дата бронирования
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время окончания (начало + длительность услуги)

	// Денормализованные данные услуги
	ServiceType     string  // Название услуги
	ServicePrice    float64 // Цена услуги
	DurationMinutes int     // Длительность в минутах

	DogBreed  *string  // Порода собаки
	DogWeight *float64 // Вес собаки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
