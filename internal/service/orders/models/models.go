package models

import (
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// OrderResponse заявка в ответах API
type OrderResponse struct {
	ID              int64   `json:"id"`
	ClientName      string  `json:"client_name"`
	ClientPhone     string  `json:"client_phone"`
	ClientEmail     *string `json:"client_email"`
	EventDate       string  `json:"event_date"` // "2025-12-25"
	Message         *string `json:"message"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// OrderListResponse список заявок
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// FromDomainOrder конвертирует domain.Order в OrderResponse
func FromDomainOrder(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		ClientName:      o.ClientName,
		ClientPhone:     o.ClientPhone,
		ClientEmail:     o.ClientEmail,
		EventDate:       o.EventDate.Format(domain.DateFormat),
		Message:         o.Message,
		Status:          string(o.Status),
		RejectionReason: o.RejectionReason,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       o.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainOrderList конвертирует список заявок
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	resp := &OrderListResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, *FromDomainOrder(o))
	}
	return resp
}
