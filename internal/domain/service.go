package domain

import "time"

// Service услуга груминга
// Длительность — свойство услуги и участвует в проверках конфликтов слотов
type Service struct {
	ID              int64
	ServiceType     string
	Price           float64
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}
