package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	// Неизвестный email и неверный пароль намеренно неразличимы для вызывающего
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
