package mark_busy

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDateRequired       = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgReasonTooLong      = "причина блокировки слишком длинная"
	msgMarkedBusy         = "дата отмечена как занятая"
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

// Handle POST /api/calendar/busy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MarkBusyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/busy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /calendar/busy - Validation failed: %s", handlers.ValidationMessage(err))
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /calendar/busy - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	day, err := h.service.MarkManualBusy(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/busy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		default:
			h.logger.Error("POST /calendar/busy - Failed to mark date busy: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/busy - Date marked busy: date=%s, calendar_id=%d", req.Date, day.ID)
	handlers.RespondJSON(w, http.StatusOK, &MarkBusyResponse{
		Success:    true,
		Message:    msgMarkedBusy,
		CalendarID: day.ID,
		Day:        day,
	})
}
