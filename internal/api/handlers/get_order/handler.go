package get_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/orders"
)

const (
	msgInvalidOrderID = "некорректный ID заявки"
	msgNotFound       = "заявка не найдена"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/orders/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /orders/{id} - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{id} - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /orders/{id} - Failed to get order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orders/{id} - Order retrieved successfully: order_id=%d", orderID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
