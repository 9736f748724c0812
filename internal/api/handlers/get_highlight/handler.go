package get_highlight

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

// HighlightResponse HTTP response model; highlight = null, если материалов нет
type HighlightResponse struct {
	Highlight *models.HighlightResponse `json:"highlight"`
}

type Handler struct {
	service HighlightService
	logger  Logger
}

func NewHandler(service HighlightService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/highlights/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /highlights/{date} - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	highlight, err := h.service.GetByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /highlights/{date} - Failed to get highlight: date=%s, error=%v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /highlights/{date} - Highlight retrieved: date=%s, found=%t", rawDate, highlight != nil)
	handlers.RespondJSON(w, http.StatusOK, &HighlightResponse{Highlight: highlight})
}
