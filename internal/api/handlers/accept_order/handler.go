package accept_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	acceptOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/accept_order"
)

const (
	msgInvalidOrderID   = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
	msgNotPending       = "заявка уже рассмотрена"
	msgDateUnavailable  = "дата уже занята другой заявкой или заблокирована вручную"
	msgConcurrentUpdate = "заявка была изменена параллельно, повторите попытку"
	msgAccepted         = "заявка принята, дата занята"
)

type Handler struct {
	useCase AcceptOrderUseCase
	logger  Logger
}

func NewHandler(useCase AcceptOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/orders/{id}/accept
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /orders/{id}/accept - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &acceptOrder.Request{OrderID: orderID})
	if err != nil {
		switch {
		case errors.Is(err, acceptOrder.ErrInvalidInput):
			h.logger.Warn("PUT /orders/{id}/accept - Invalid input: order_id=%d", orderID)
			handlers.RespondBadRequest(w, msgInvalidOrderID)

		case errors.Is(err, acceptOrder.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{id}/accept - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, acceptOrder.ErrOrderNotPending):
			h.logger.Warn("PUT /orders/{id}/accept - Order not pending: order_id=%d", orderID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, acceptOrder.ErrDateUnavailable):
			h.logger.Warn("PUT /orders/{id}/accept - Date unavailable: order_id=%d", orderID)
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, acceptOrder.ErrConcurrentUpdate):
			h.logger.Warn("PUT /orders/{id}/accept - Concurrent update: order_id=%d", orderID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PUT /orders/{id}/accept - Failed to accept order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{id}/accept - Order accepted: order_id=%d, calendar_id=%d", orderID, result.CalendarID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgAccepted))
}
