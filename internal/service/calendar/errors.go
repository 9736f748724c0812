package calendar

import "errors"

var (
	// ErrDayNotFound возвращается, когда запись календаря не найдена
	ErrDayNotFound = errors.New("calendar day not found")

	// ErrOrderLinked возвращается при попытке удалить дату, занятую через заявку
	ErrOrderLinked = errors.New("calendar day is linked to an order")

	// ErrInvalidRange возвращается при некорректном периоде выборки
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
