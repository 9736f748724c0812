package list_orders

import (
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
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

// Handle GET /api/orders
// Порядок: pending, accepted, rejected; внутри группы - новые первыми
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /orders - Failed to list orders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /orders - Orders retrieved successfully: count=%d", len(orders.Orders))
	handlers.RespondJSON(w, http.StatusOK, orders)
}
