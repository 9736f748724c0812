package submit_order

import (
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	submitOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/submit_order"
)

// SubmitOrderRequest HTTP request model
type SubmitOrderRequest struct {
	ClientName  string  `json:"client_name" validate:"required"`
	ClientPhone string  `json:"client_phone" validate:"required"`
	ClientEmail *string `json:"client_email,omitempty"`
	EventDate   string  `json:"event_date" validate:"required"` // "2026-06-12"
	Message     *string `json:"message,omitempty"`
}

// SubmitOrderResponse HTTP response model
type SubmitOrderResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   int64  `json:"order_id"`
	EventDate string `json:"event_date"`
	Status    string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitOrderRequest) ToUseCaseRequest() (*submitOrder.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	return &submitOrder.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		EventDate:   eventDate,
		Message:     r.Message,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitOrder.Response, message string) *SubmitOrderResponse {
	return &SubmitOrderResponse{
		Success:   true,
		Message:   message,
		OrderID:   resp.OrderID,
		EventDate: resp.EventDate.Format(domain.DateFormat),
		Status:    resp.Status,
	}
}
