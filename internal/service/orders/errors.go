package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заявка не найдена
	ErrOrderNotFound = errors.New("order not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
