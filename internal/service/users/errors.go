package users

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("users.service: email address is already in use")

	// ErrMobileTaken возвращается, когда номер телефона уже занят
	ErrMobileTaken = errors.New("users.service: mobile number is already in use")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("users.service: incorrect email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users.service: invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("users.service: internal error")
)
