package calendar

import "errors"

var (
	// ErrDayNotFound возвращается, когда запись календаря не найдена
	ErrDayNotFound = errors.New("calendar.repository: calendar day not found")

	// ErrDateUnavailable возвращается, когда дата уже удерживается (pending/busy)
	// и не может быть перезаписана заявкой
	ErrDateUnavailable = errors.New("calendar.repository: date is not available")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")

	// ErrSerialization возвращается при конфликте сериализуемых транзакций
	ErrSerialization = errors.New("calendar.repository: serialization failure")
)
