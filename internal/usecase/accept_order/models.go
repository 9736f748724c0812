package accept_order

import "time"

// Request модель запроса на принятие заявки
type Request struct {
	OrderID int64
}

// Response результат принятия заявки
type Response struct {
	OrderID    int64
	CalendarID int64
	EventDate  time.Time
	Status     string
}
