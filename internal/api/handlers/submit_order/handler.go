package submit_order

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	submitOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/submit_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRequiredFields     = "заполните обязательные поля: имя, телефон и дата"
	msgInvalidDate        = "некорректный формат даты мероприятия, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgDateInPast         = "нельзя подать заявку на прошедшую дату"
	msgDateBusy           = "эта дата уже занята"
	msgDatePending        = "на эту дату уже подана заявка, она ожидает рассмотрения"
	msgSubmitted          = "заявка успешно отправлена"
)

type Handler struct {
	useCase SubmitOrderUseCase
	logger  Logger
}

func NewHandler(useCase SubmitOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /orders - Missing required fields: %s", handlers.ValidationMessage(err))
		handlers.RespondBadRequest(w, msgRequiredFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /orders - Invalid event date: %q", req.EventDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+inputDetail(err))

		case errors.Is(err, submitOrder.ErrDateInPast):
			h.logger.Warn("POST /orders - Date in the past: date=%s", req.EventDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitOrder.ErrDateBusy):
			h.logger.Warn("POST /orders - Date busy: date=%s", req.EventDate)
			handlers.RespondConflict(w, msgDateBusy)

		case errors.Is(err, submitOrder.ErrDatePending):
			h.logger.Warn("POST /orders - Date pending: date=%s", req.EventDate)
			handlers.RespondConflict(w, msgDatePending)

		default:
			h.logger.Error("POST /orders - Failed to submit order: date=%s, error=%v", req.EventDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order submitted successfully: order_id=%d, date=%s", result.OrderID, req.EventDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, msgSubmitted))
}

// inputDetail текст после префикса sentinel ошибки ("client_phone is required")
func inputDetail(err error) string {
	return strings.TrimPrefix(err.Error(), submitOrder.ErrInvalidInput.Error()+": ")
}
