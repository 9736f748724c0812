package highlight

import "errors"

var (
	// ErrHighlightNotFound возвращается, когда запись не найдена
	ErrHighlightNotFound = errors.New("highlight.repository: highlight not found")

	// ErrCalendarDayNotFound возвращается, когда указанной записи календаря не существует
	ErrCalendarDayNotFound = errors.New("highlight.repository: calendar day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("highlight.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("highlight.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("highlight.repository: failed to scan row")
)
