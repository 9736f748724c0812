package filestore

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Категории загружаемых файлов (подкаталоги)
const (
	CategoryHighlights = "highlights"
	CategoryNews       = "news"
)

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".webp": {},
}

// Store хранилище загруженных изображений на диске
// Файлы доступны по публичному пути <urlPrefix>/<category>/<uuid><ext>
type Store struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

// New создает хранилище, при необходимости создавая корневой каталог
func New(dir, urlPrefix string, maxSize int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: New - create dir %s: %v", ErrInternal, dir, err)
	}

	return &Store{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		maxSize:   maxSize,
	}, nil
}

// IsAllowed проверяет расширение исходного имени файла
func IsAllowed(originalName string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(originalName))]
	return ok
}

// Save сохраняет файл под случайным именем и возвращает его публичный путь
func (s *Store) Save(category, originalName string, src io.Reader) (string, error) {
	if !IsAllowed(originalName) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Ext(originalName))
	}

	categoryDir := filepath.Join(s.dir, category)
	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: Save - create dir: %v", ErrInternal, err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	fullPath := filepath.Join(categoryDir, name)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("%w: Save - create file: %v", ErrInternal, err)
	}

	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()

	switch {
	case err != nil:
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: Save - write file: %v", ErrInternal, err)
	case written > s.maxSize:
		os.Remove(fullPath)
		return "", ErrTooLarge
	case closeErr != nil:
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: Save - close file: %v", ErrInternal, closeErr)
	}

	return path.Join(s.urlPrefix, category, name), nil
}

// Remove удаляет файл по публичному пути; отсутствующий файл не считается ошибкой
func (s *Store) Remove(publicPath string) error {
	fullPath, err := s.resolve(publicPath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: Remove - %v", ErrInternal, err)
	}

	return nil
}

// Handler раздаёт загруженные файлы по urlPrefix
func (s *Store) Handler() http.Handler {
	return http.StripPrefix(s.urlPrefix+"/", http.FileServer(http.Dir(s.dir)))
}

// URLPrefix публичный префикс загруженных файлов
func (s *Store) URLPrefix() string {
	return s.urlPrefix
}

// resolve переводит публичный путь в путь на диске внутри s.dir
func (s *Store) resolve(publicPath string) (string, error) {
	cleaned := path.Clean("/" + strings.TrimPrefix(publicPath, "/"))
	if !strings.HasPrefix(cleaned, s.urlPrefix+"/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, publicPath)
	}

	rel := strings.TrimPrefix(cleaned, s.urlPrefix+"/")
	return filepath.Join(s.dir, filepath.FromSlash(rel)), nil
}
