package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied пользователь не владеет бронированием и не является администратором
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
