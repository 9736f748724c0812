package list_all_news

import (
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
)

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

// Handle GET /api/news/all
// Все новости, включая черновики
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	news, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /news/all - Failed to list news: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /news/all - News retrieved successfully: count=%d", len(news.News))
	handlers.RespondJSON(w, http.StatusOK, news)
}
