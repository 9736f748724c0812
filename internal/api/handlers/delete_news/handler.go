package delete_news

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
)

const (
	msgInvalidNewsID = "некорректный ID новости"
	msgNotFound      = "новость не найдена"
	msgDeleted       = "новость удалена"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
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

// Handle DELETE /api/news/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	newsID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /news/{id} - Invalid news ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNewsID)
		return
	}

	if err := h.service.Delete(r.Context(), newsID); err != nil {
		switch {
		case errors.Is(err, news.ErrNewsNotFound):
			h.logger.Warn("DELETE /news/{id} - News not found: news_id=%d", newsID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /news/{id} - Failed to delete news: news_id=%d, error=%v", newsID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /news/{id} - News deleted: news_id=%d", newsID)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{Success: true, Message: msgDeleted})
}
