package accept_order

import (
	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	acceptOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/accept_order"
)

// AcceptOrderResponse HTTP response model
type AcceptOrderResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	OrderID    int64  `json:"order_id"`
	CalendarID int64  `json:"calendar_id"`
	EventDate  string `json:"event_date"`
	Status     string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *acceptOrder.Response, message string) *AcceptOrderResponse {
	return &AcceptOrderResponse{
		Success:    true,
		Message:    message,
		OrderID:    resp.OrderID,
		CalendarID: resp.CalendarID,
		EventDate:  resp.EventDate.Format(domain.DateFormat),
		Status:     resp.Status,
	}
}
