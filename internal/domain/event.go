package domain

import "time"

// EventKind тип доменного события для уведомлений
type EventKind string

const (
	EventOrderSubmitted     EventKind = "order_submitted"
	EventOrderAccepted      EventKind = "order_accepted"
	EventOrderRejected      EventKind = "order_rejected"
	EventHighlightsReminder EventKind = "highlights_reminder"
)

// Event доменное событие; бизнес-логика только публикует его,
// доставкой занимается диспетчер уведомлений
type Event struct {
	Kind       EventKind
	Order      *Order
	Reason     *string
	PastEvents []PastEvent
	OccurredAt time.Time
}
