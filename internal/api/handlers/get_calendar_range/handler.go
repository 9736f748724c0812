package get_calendar_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "укажите start_date и end_date, start_date не может быть позже end_date"
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

// Handle GET /api/calendar/range?start_date=2026-06-01&end_date=2026-06-30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query, err := ParseRangeQuery(r)
	if err != nil {
		h.logger.Warn("GET /calendar/range - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetRange(r.Context(), query.StartDate, query.EndDate)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidRange):
			h.logger.Warn("GET /calendar/range - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /calendar/range - Failed to get calendar range: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/range - Calendar range retrieved successfully: days=%d", len(result.Calendar))
	handlers.RespondJSON(w, http.StatusOK, result)
}
