package submit_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_order: invalid input data")

	// ErrDateInPast возвращается, когда дата мероприятия уже прошла
	ErrDateInPast = errors.New("submit_order: event date is in the past")

	// ErrDateBusy возвращается, когда дата уже занята
	ErrDateBusy = errors.New("submit_order: date is already busy")

	// ErrDatePending возвращается, когда на дату уже есть заявка на рассмотрении
	ErrDatePending = errors.New("submit_order: date is held by another pending order")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_order: internal error")
)
