package upsert_highlight

import (
	"net/http"
	"strconv"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/ptr"
)

// UpsertHighlightResponse HTTP response model
type UpsertHighlightResponse struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message"`
	ID        int64                     `json:"id"`
	Highlight *models.HighlightResponse `json:"highlight"`
}

// parseForm достаёт поля multipart формы: calendar_id, video_url (или instagram_url)
func parseForm(r *http.Request) (calendarID int64, videoURL *string, err error) {
	calendarID, err = strconv.ParseInt(handlers.FormValue(r, "calendar_id"), 10, 64)
	if err != nil || calendarID <= 0 {
		return 0, nil, handlers.ErrInvalidID
	}

	return calendarID, ptr.NilIfEmpty(handlers.FormValue(r, "video_url", "instagram_url")), nil
}

// toServiceRequest собирает запрос сервиса; upload может быть nil
func toServiceRequest(calendarID int64, videoURL *string, upload *handlers.Upload, uploadedBy *string) *models.UpsertRequest {
	req := &models.UpsertRequest{
		CalendarID: calendarID,
		VideoURL:   videoURL,
		UploadedBy: uploadedBy,
	}
	if upload != nil {
		req.Image = &models.FileUpload{Filename: upload.Filename, Content: upload.File}
	}
	return req
}
