package toggle_news_publish

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
)

const (
	msgInvalidNewsID = "некорректный ID новости"
	msgNotFound      = "новость не найдена"
	msgPublished     = "новость опубликована"
	msgHidden        = "новость скрыта"
)

// ToggleResponse HTTP response model
type ToggleResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Published bool   `json:"published"`
}

type Handler struct {
	service NewsService
	logger  Logger
}

func NewHandler(service NewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/news/{id}/toggle-publish
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	newsID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /news/{id}/toggle-publish - Invalid news ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNewsID)
		return
	}

	published, err := h.service.TogglePublish(r.Context(), newsID)
	if err != nil {
		switch {
		case errors.Is(err, news.ErrNewsNotFound):
			h.logger.Warn("PATCH /news/{id}/toggle-publish - News not found: news_id=%d", newsID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /news/{id}/toggle-publish - Failed to toggle: news_id=%d, error=%v", newsID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgHidden
	if published {
		message = msgPublished
	}

	h.logger.Info("PATCH /news/{id}/toggle-publish - News toggled: news_id=%d, published=%t", newsID, published)
	handlers.RespondJSON(w, http.StatusOK, &ToggleResponse{Success: true, Message: message, Published: published})
}
