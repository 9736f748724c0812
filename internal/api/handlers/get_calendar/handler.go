package get_calendar

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

// Handle GET /api/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar - Failed to get calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - Calendar retrieved successfully: days=%d", len(calendar.Calendar))
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
