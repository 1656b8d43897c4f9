package domain

// Значения по умолчанию
const (
	// DefaultServiceDurationMinutes длительность услуги по умолчанию (один час)
	DefaultServiceDurationMinutes = 60
)

// Ограничения бизнес-валидации
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 часов

	MaxNameLength        = 100
	MaxServiceTypeLength = 100
	MaxDogBreedLength    = 100

	MaxDogWeightKg = 200.0
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04:05"   // HH:MM:SS
)
