package slots

import "errors"

var (
	// ErrSlotExists слот на эту дату и время уже существует
	ErrSlotExists = errors.New("slots.service: slot already exists")

	// ErrInvalidInput входные данные не прошли валидацию
	ErrInvalidInput = errors.New("slots.service: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
