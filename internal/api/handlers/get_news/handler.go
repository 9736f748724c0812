package get_news

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
)

const (
	msgInvalidNewsID = "некорректный ID новости"
	msgNotFound      = "новость не найдена"
)

// NewsResponse HTTP response model
type NewsResponse struct {
	News *models.NewsResponse `json:"news"`
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

// Handle GET /api/news/{id}
// Черновики публично не отдаются (404)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	newsID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /news/{id} - Invalid news ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNewsID)
		return
	}

	item, err := h.service.GetByID(r.Context(), newsID, true)
	if err != nil {
		switch {
		case errors.Is(err, news.ErrNewsNotFound):
			h.logger.Warn("GET /news/{id} - News not found: news_id=%d", newsID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /news/{id} - Failed to get news: news_id=%d, error=%v", newsID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /news/{id} - News retrieved successfully: news_id=%d", newsID)
	handlers.RespondJSON(w, http.StatusOK, &NewsResponse{News: item})
}
