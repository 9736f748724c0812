package delete_highlight

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights"
)

const (
	msgInvalidHighlightID = "некорректный ID материалов"
	msgNotFound           = "материалы не найдены"
	msgDeleted            = "материалы удалены"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
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

// Handle DELETE /api/highlights/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	highlightID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /highlights/{id} - Invalid highlight ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHighlightID)
		return
	}

	if err := h.service.Delete(r.Context(), highlightID); err != nil {
		switch {
		case errors.Is(err, highlights.ErrHighlightNotFound):
			h.logger.Warn("DELETE /highlights/{id} - Highlight not found: highlight_id=%d", highlightID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /highlights/{id} - Failed to delete highlight: highlight_id=%d, error=%v", highlightID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /highlights/{id} - Highlight deleted: highlight_id=%d", highlightID)
	handlers.RespondJSON(w, http.StatusOK, &DeleteResponse{Success: true, Message: msgDeleted})
}
