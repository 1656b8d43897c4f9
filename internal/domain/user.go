package domain

import "time"

// User пользователь системы
type User struct {
	ID           int64
	Name         *string
	Email        string // уникальный
	MobileNumber int64  // уникальный
	PasswordHash string // bcrypt, наружу не сериализуется
	IsAdmin      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
