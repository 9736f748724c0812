package models

import (
	"io"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// FileUpload загруженный файл из multipart формы
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// NewsRequest создание/обновление новости
type NewsRequest struct {
	Title     string
	Content   string
	Published bool
	Image     *FileUpload
}

// NewsResponse новость
type NewsResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ContentHTML string  `json:"content_html"`
	ImagePath   *string `json:"image_path"`
	Published   bool    `json:"published"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// NewsListResponse список новостей
type NewsListResponse struct {
	News []NewsResponse `json:"news"`
}

// FromDomainNews конвертирует domain.News; contentHTML - отрендеренный текст
func FromDomainNews(n *domain.News, contentHTML string) *NewsResponse {
	return &NewsResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		ContentHTML: contentHTML,
		ImagePath:   n.ImagePath,
		Published:   n.Published,
		CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   n.UpdatedAt.Format(time.RFC3339),
	}
}
