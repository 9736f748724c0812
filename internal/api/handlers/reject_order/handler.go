package reject_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	rejectOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/reject_order"
)

const (
	msgInvalidOrderID     = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReasonTooLong      = "причина отказа слишком длинная"
	msgNotFound           = "заявка не найдена"
	msgNotPending         = "заявка уже рассмотрена"
	msgConcurrentUpdate   = "заявка была изменена параллельно, повторите попытку"
	msgRejected           = "заявка отклонена"
)

type Handler struct {
	useCase RejectOrderUseCase
	logger  Logger
}

func NewHandler(useCase RejectOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/orders/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orderID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /orders/{id}/reject - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	// Причина отказа необязательна, пустое тело допустимо
	var req RejectOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PUT /orders/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(orderID))
	if err != nil {
		switch {
		case errors.Is(err, rejectOrder.ErrInvalidInput):
			h.logger.Warn("PUT /orders/{id}/reject - Invalid input: order_id=%d, error=%v", orderID, err)
			handlers.RespondBadRequest(w, msgReasonTooLong)

		case errors.Is(err, rejectOrder.ErrOrderNotFound):
			h.logger.Warn("PUT /orders/{id}/reject - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rejectOrder.ErrOrderNotPending):
			h.logger.Warn("PUT /orders/{id}/reject - Order not pending: order_id=%d", orderID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, rejectOrder.ErrConcurrentUpdate):
			h.logger.Warn("PUT /orders/{id}/reject - Concurrent update: order_id=%d", orderID)
			handlers.RespondConflict(w, msgConcurrentUpdate)

		default:
			h.logger.Error("PUT /orders/{id}/reject - Failed to reject order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orders/{id}/reject - Order rejected: order_id=%d", orderID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgRejected))
}
