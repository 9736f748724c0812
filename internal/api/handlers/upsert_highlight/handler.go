package upsert_highlight

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/api/middleware"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights"
)

const (
	msgInvalidForm         = "некорректная форма запроса"
	msgCalendarIDRequired  = "calendar_id обязателен"
	msgCalendarDayNotFound = "дата календаря не найдена"
	msgUnsupportedImage    = "допустимы только изображения jpeg, jpg, png, webp"
	msgImageTooLarge       = "изображение слишком большое"
	msgSaved               = "материалы сохранены"
)

type Handler struct {
	service       HighlightService
	maxUploadSize int64
	logger        Logger
}

func NewHandler(service HighlightService, maxUploadSize int64, logger Logger) *Handler {
	return &Handler{
		service:       service,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Handle POST /api/highlights (multipart/form-data: calendar_id, video_url, image)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	upload, err := handlers.ParseMultipart(w, r, h.maxUploadSize, "image")
	if err != nil {
		if errors.Is(err, handlers.ErrFileTooLarge) {
			h.logger.Warn("POST /highlights - Upload too large")
			handlers.RespondBadRequest(w, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /highlights - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer upload.Close()

	calendarID, videoURL, err := parseForm(r)
	if err != nil {
		h.logger.Warn("POST /highlights - Invalid calendar_id: %q", r.FormValue("calendar_id"))
		handlers.RespondBadRequest(w, msgCalendarIDRequired)
		return
	}

	var uploadedBy *string
	if admin, ok := middleware.GetAdmin(r.Context()); ok {
		uploadedBy = &admin.Username
	}

	highlight, err := h.service.Upsert(r.Context(), toServiceRequest(calendarID, videoURL, upload, uploadedBy))
	if err != nil {
		switch {
		case errors.Is(err, highlights.ErrInvalidInput):
			h.logger.Warn("POST /highlights - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgCalendarIDRequired)

		case errors.Is(err, highlights.ErrCalendarDayNotFound):
			h.logger.Warn("POST /highlights - Calendar day not found: calendar_id=%d", calendarID)
			handlers.RespondNotFound(w, msgCalendarDayNotFound)

		case errors.Is(err, highlights.ErrUnsupportedImage):
			h.logger.Warn("POST /highlights - Unsupported image: calendar_id=%d", calendarID)
			handlers.RespondBadRequest(w, msgUnsupportedImage)

		case errors.Is(err, highlights.ErrImageTooLarge):
			h.logger.Warn("POST /highlights - Image too large: calendar_id=%d", calendarID)
			handlers.RespondBadRequest(w, msgImageTooLarge)

		default:
			h.logger.Error("POST /highlights - Failed to save highlight: calendar_id=%d, error=%v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /highlights - Highlight saved: highlight_id=%d, calendar_id=%d", highlight.ID, calendarID)
	handlers.RespondJSON(w, http.StatusOK, &UpsertHighlightResponse{
		Success:   true,
		Message:   msgSaved,
		ID:        highlight.ID,
		Highlight: highlight,
	})
}
