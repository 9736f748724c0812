package news

import "errors"

var (
	// ErrNewsNotFound возвращается, когда новость не найдена
	ErrNewsNotFound = errors.New("news not found")

	// ErrUnsupportedImage возвращается для файлов не из списка jpeg/jpg/png/webp
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrImageTooLarge возвращается, когда изображение больше лимита
	ErrImageTooLarge = errors.New("image is too large")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
