package models

import (
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// Request модели

// MarkBusyRequest ручная блокировка даты
type MarkBusyRequest struct {
	Date         time.Time
	ManualReason *string
}

// Response модели

// CalendarDayResponse запись календаря
type CalendarDayResponse struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"` // "2025-12-25"
	Status       string  `json:"status"`
	OrderID      *int64  `json:"order_id"`
	ManualReason *string `json:"manual_reason"`
	CreatedAt    string  `json:"created_at"`
	ClientName   *string `json:"client_name,omitempty"`
	ClientPhone  *string `json:"client_phone,omitempty"`
}

// CalendarResponse календарь
type CalendarResponse struct {
	Calendar []CalendarDayResponse `json:"calendar"`
}

// PastEventResponse прошедшее мероприятие
type PastEventResponse struct {
	CalendarDayResponse
	HighlightsCount int  `json:"highlights_count"`
	NeedsHighlights bool `json:"needs_highlights"`
}

// PastEventsResponse прошедшие мероприятия
type PastEventsResponse struct {
	PastEvents []PastEventResponse `json:"past_events"`
}

// FromDomainDay конвертирует domain.CalendarDay
func FromDomainDay(d *domain.CalendarDay) *CalendarDayResponse {
	return &CalendarDayResponse{
		ID:           d.ID,
		Date:         d.Date.Format(domain.DateFormat),
		Status:       string(d.Status),
		OrderID:      d.OrderID,
		ManualReason: d.ManualReason,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainEntries конвертирует записи календаря с данными клиента
func FromDomainEntries(entries []*domain.CalendarEntry) *CalendarResponse {
	resp := &CalendarResponse{Calendar: make([]CalendarDayResponse, 0, len(entries))}
	for _, e := range entries {
		day := FromDomainDay(&e.CalendarDay)
		day.ClientName = e.ClientName
		day.ClientPhone = e.ClientPhone
		resp.Calendar = append(resp.Calendar, *day)
	}
	return resp
}

// FromDomainPastEvents конвертирует прошедшие мероприятия
func FromDomainPastEvents(events []*domain.PastEvent) *PastEventsResponse {
	resp := &PastEventsResponse{PastEvents: make([]PastEventResponse, 0, len(events))}
	for _, e := range events {
		day := FromDomainDay(&e.CalendarDay)
		day.ClientName = e.ClientName
		resp.PastEvents = append(resp.PastEvents, PastEventResponse{
			CalendarDayResponse: *day,
			HighlightsCount:     e.HighlightsCount,
			NeedsHighlights:     e.NeedsHighlights(),
		})
	}
	return resp
}
