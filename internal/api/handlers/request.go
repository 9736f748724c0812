package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Лимит тела JSON запроса
const maxJSONBodySize = 1 << 20

var (
	// ErrEmptyBody тело запроса отсутствует
	ErrEmptyBody = errors.New("handlers: empty request body")

	// ErrInvalidID параметр пути не является положительным числом
	ErrInvalidID = errors.New("handlers: invalid id")

	// ErrFileTooLarge загруженный файл или форма превышает лимит
	ErrFileTooLarge = errors.New("handlers: uploaded file is too large")
)

var validate = validator.New()

// DecodeJSON декодирует тело запроса; неизвестные поля игнорируются
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// Validate проверяет структуру по тегам `validate`
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage первая ошибка валидации в виде "поле: правило"
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}

// PathID читает положительный числовой параметр пути
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// Upload файл из multipart формы
type Upload struct {
	Filename string
	File     multipart.File
}

// Close закрывает файл, если он был загружен
func (u *Upload) Close() {
	if u != nil && u.File != nil {
		_ = u.File.Close()
	}
}

// ParseMultipart разбирает multipart форму с ограничением размера и достаёт файл field (если есть)
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxSize int64, field string) (*Upload, error) {
	// запас на текстовые поля формы
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+maxJSONBodySize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read form file %s: %w", field, err)
	}

	if header.Size > maxSize {
		_ = file.Close()
		return nil, ErrFileTooLarge
	}

	return &Upload{Filename: header.Filename, File: file}, nil
}

// FormValue значение поля формы без пробелов по краям
func FormValue(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r.FormValue(name)); v != "" {
			return v
		}
	}
	return ""
}

// FormBool разбирает булево поле формы ("true", "1", "on"); пустое значение - def
func FormBool(r *http.Request, name string, def bool) (bool, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return def, nil
	}
	if v == "on" {
		return true, nil
	}
	return strconv.ParseBool(v)
}
