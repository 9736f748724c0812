package news

import "errors"

var (
	// ErrNewsNotFound возвращается, когда новость не найдена
	ErrNewsNotFound = errors.New("news.repository: news not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("news.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("news.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("news.repository: failed to scan row")
)
