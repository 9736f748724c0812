package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неизвестном логине или неверном пароле
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken возвращается для недействительного или просроченного токена
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
