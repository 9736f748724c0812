package highlights_reminder

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("highlights_reminder: internal error")
)
