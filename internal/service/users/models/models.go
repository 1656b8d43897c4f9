package models

import (
	"time"

	"github.com/m04kA/PGS-BookingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        string  `json:"email"`
	MobileNumber int64   `json:"mobileNumber"`
	Password     string  `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse ответ с токеном доступа
type LoginResponse struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// UserResponse пользователь в ответах API
// Хеш пароля наружу не отдается
type UserResponse struct {
	ID           int64     `json:"id"`
	Name         *string   `json:"name,omitempty"`
	Email        string    `json:"email"`
	MobileNumber int64     `json:"mobileNumber"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserListResponse ответ со списком пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		MobileNumber: u.MobileNumber,
		IsAdmin:      u.IsAdmin,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// FromDomainUserList конвертирует список domain моделей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
	}

	for _, u := range users {
		if userResp := FromDomainUser(u); userResp != nil {
			resp.Users = append(resp.Users, *userResp)
		}
	}

	return resp
}
