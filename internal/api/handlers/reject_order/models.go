package reject_order

import (
	rejectOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/reject_order"
)

// RejectOrderRequest HTTP request model (тело необязательно)
type RejectOrderRequest struct {
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

// RejectOrderResponse HTTP response model
type RejectOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
func (r *RejectOrderRequest) ToUseCaseRequest(orderID int64) *rejectOrder.Request {
	return &rejectOrder.Request{
		OrderID: orderID,
		Reason:  r.RejectionReason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rejectOrder.Response, message string) *RejectOrderResponse {
	return &RejectOrderResponse{
		Success: true,
		Message: message,
		OrderID: resp.OrderID,
		Status:  resp.Status,
	}
}
