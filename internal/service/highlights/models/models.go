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

// UpsertRequest запрос на сохранение материалов даты
type UpsertRequest struct {
	CalendarID int64
	VideoURL   *string
	Image      *FileUpload
	UploadedBy *string
}

// HighlightResponse материалы мероприятия
type HighlightResponse struct {
	ID         int64   `json:"id"`
	CalendarID int64   `json:"calendar_id"`
	Date       string  `json:"date,omitempty"`
	VideoURL   *string `json:"video_url"`
	ImagePath  *string `json:"image_path"`
	UploadedAt string  `json:"uploaded_at"`
	UploadedBy *string `json:"uploaded_by"`
}

// FromDomainHighlight конвертирует domain.Highlight
func FromDomainHighlight(h *domain.Highlight) *HighlightResponse {
	resp := &HighlightResponse{
		ID:         h.ID,
		CalendarID: h.CalendarID,
		VideoURL:   h.VideoURL,
		ImagePath:  h.ImagePath,
		UploadedAt: h.UploadedAt.Format(time.RFC3339),
		UploadedBy: h.UploadedBy,
	}
	if !h.Date.IsZero() {
		resp.Date = h.Date.Format(domain.DateFormat)
	}
	return resp
}
