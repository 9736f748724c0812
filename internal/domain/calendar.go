package domain

import "time"

// DayStatus статус занятости даты
type DayStatus string

const (
	DayFree    DayStatus = "free"
	DayPending DayStatus = "pending"
	DayBusy    DayStatus = "busy"
)

// CalendarDay запись о занятости одной даты (дата уникальна)
type CalendarDay struct {
	ID           int64
	Date         time.Time
	Status       DayStatus
	OrderID      *int64 // заявка, удерживающая дату
	ManualReason *string
	CreatedAt    time.Time
}

// IsBusy дата занята окончательно
func (d *CalendarDay) IsBusy() bool {
	return d.Status == DayBusy
}

// IsPending дата удерживается заявкой на рассмотрении
func (d *CalendarDay) IsPending() bool {
	return d.Status == DayPending
}

// IsOrderLinked запись привязана к заявке и не может быть удалена напрямую
func (d *CalendarDay) IsOrderLinked() bool {
	return d.OrderID != nil
}

// IsHeldBy дата удерживается указанной заявкой
func (d *CalendarDay) IsHeldBy(orderID int64) bool {
	return d.OrderID != nil && *d.OrderID == orderID
}

// AcceptsNewOrder на дату можно подать новую заявку
func (d *CalendarDay) AcceptsNewOrder() bool {
	return d.Status == DayFree
}

// CalendarEntry запись календаря для отображения (с данными клиента)
type CalendarEntry struct {
	CalendarDay
	ClientName  *string
	ClientPhone *string
}

// PastEvent прошедшая занятая дата с количеством загруженных материалов (highlights)
type PastEvent struct {
	CalendarDay
	ClientName      *string
	HighlightsCount int
}

// NeedsHighlights для прошедшего мероприятия ещё ничего не загружено
func (e *PastEvent) NeedsHighlights() bool {
	return e.HighlightsCount == 0
}

// CalendarFilter фильтр выборки календаря (nil - без ограничения)
type CalendarFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// PastBusyFilter фильтр прошедших занятых дат
type PastBusyFilter struct {
	Before                time.Time // строго раньше этой даты
	OnlyWithoutHighlights bool
	Limit                 uint64 // 0 - без ограничения
}
