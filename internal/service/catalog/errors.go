package catalog

import "errors"

var (
	// ErrInvalidInput входные данные не прошли валидацию
	ErrInvalidInput = errors.New("catalog.service: invalid input")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("catalog.service: internal error")
)
