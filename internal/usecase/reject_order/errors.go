package reject_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_order: invalid input data")

	// ErrOrderNotFound возвращается, когда заявка не найдена
	ErrOrderNotFound = errors.New("reject_order: order not found")

	// ErrOrderNotPending возвращается, когда заявка уже рассмотрена
	ErrOrderNotPending = errors.New("reject_order: order is not pending")

	// ErrConcurrentUpdate возвращается при конфликте параллельных транзакций
	ErrConcurrentUpdate = errors.New("reject_order: order was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_order: internal error")
)
