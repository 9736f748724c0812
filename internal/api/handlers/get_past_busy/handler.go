package get_past_busy

import (
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/calendar/past-busy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.GetPastBusy(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar/past-busy - Failed to get past events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar/past-busy - Past events retrieved successfully: count=%d", len(events.PastEvents))
	handlers.RespondJSON(w, http.StatusOK, events)
}
