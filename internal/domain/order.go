package domain

import "time"

// OrderStatus статус заявки на съёмку
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderAccepted OrderStatus = "accepted"
	OrderRejected OrderStatus = "rejected"
)

// Order заявка клиента на конкретную дату мероприятия
type Order struct {
	ID              int64
	ClientName      string
	ClientPhone     string
	ClientEmail     *string
	EventDate       time.Time
	Message         *string
	Status          OrderStatus
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPending заявка ещё не рассмотрена
func (o *Order) IsPending() bool {
	return o.Status == OrderPending
}

// CanBeReviewed принять или отклонить можно только заявку в статусе pending
func (o *Order) CanBeReviewed() bool {
	return o.IsPending()
}

// IsValid проверяет, что статус из допустимого набора
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderRejected:
		return true
	}
	return false
}
