package accept_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном ID заявки
	ErrInvalidInput = errors.New("accept_order: invalid input data")

	// ErrOrderNotFound возвращается, когда заявка не найдена
	ErrOrderNotFound = errors.New("accept_order: order not found")

	// ErrOrderNotPending возвращается, когда заявка уже рассмотрена
	ErrOrderNotPending = errors.New("accept_order: order is not pending")

	// ErrDateUnavailable возвращается, когда дата занята другой заявкой или вручную
	ErrDateUnavailable = errors.New("accept_order: date is taken by someone else")

	// ErrConcurrentUpdate возвращается при конфликте параллельных транзакций
	ErrConcurrentUpdate = errors.New("accept_order: order was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("accept_order: internal error")
)
