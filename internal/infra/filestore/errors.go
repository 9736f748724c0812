package filestore

import "errors"

var (
	// ErrUnsupportedType возвращается, когда расширение файла не из списка разрешённых
	ErrUnsupportedType = errors.New("filestore: unsupported file type")

	// ErrTooLarge возвращается, когда файл больше допустимого размера
	ErrTooLarge = errors.New("filestore: file too large")

	// ErrInvalidPath возвращается, когда путь указывает за пределы каталога загрузок
	ErrInvalidPath = errors.New("filestore: invalid path")

	// ErrInternal возвращается при ошибках файловой системы
	ErrInternal = errors.New("filestore: internal error")
)
