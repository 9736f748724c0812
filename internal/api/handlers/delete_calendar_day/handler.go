package delete_calendar_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
)

const (
	msgInvalidCalendarID = "некорректный ID даты"
	msgNotFound          = "дата не найдена"
	msgOrderLinked       = "дата занята через заявку, отклоните заявку"
	msgDeleted           = "дата удалена"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

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

// Handle DELETE /api/calendar/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendarID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /calendar/{id} - Invalid calendar ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCalendarID)
		return
	}

	if err := h.service.Delete(r.Context(), calendarID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrDayNotFound):
			h.logger.Warn("DELETE /calendar/{id} - Day not found: calendar_id=%d", calendarID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendar.ErrOrderLinked):
			h.logger.Warn("DELETE /calendar/{id} - Day linked to order: calendar_id=%d", calendarID)
			handlers.RespondConflict(w, msgOrderLinked)

		default:
			h.logger.Error("DELETE /calendar/{id} - Failed to delete day: calendar_id=%d, error=%v", calendarID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar/{id} - Day deleted: calendar_id=%d", calendarID)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{Success: true, Message: msgDeleted})
}
