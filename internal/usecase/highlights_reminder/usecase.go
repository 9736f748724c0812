package highlights_reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// UseCase ежедневное напоминание о прошедших мероприятиях без материалов
type UseCase struct {
	calendarRepo CalendarRepository
	publisher    EventPublisher
	timeProvider TimeProvider
	limit        uint64
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; limit <= 0 заменяется значением по умолчанию
func NewUseCase(calendarRepo CalendarRepository, publisher EventPublisher, limit int, logger Logger) *UseCase {
	if limit <= 0 {
		limit = domain.DefaultReminderLimit
	}

	return &UseCase{
		calendarRepo: calendarRepo,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		limit:        uint64(limit),
		logger:       logger,
	}
}

// Execute находит последние прошедшие busy-даты без highlights и публикует одно напоминание
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	events, err := uc.calendarRepo.ListPastBusy(ctx, domain.PastBusyFilter{
		Before:                today,
		OnlyWithoutHighlights: true,
		Limit:                 uc.limit,
	})
	if err != nil {
		uc.logger.Error("HighlightsReminder: failed to list past events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if len(events) == 0 {
		uc.logger.Info("HighlightsReminder: nothing to remind about")
		return &Response{}, nil
	}

	pastEvents := make([]domain.PastEvent, 0, len(events))
	for _, e := range events {
		pastEvents = append(pastEvents, *e)
	}

	uc.publisher.Publish(domain.Event{
		Kind:       domain.EventHighlightsReminder,
		PastEvents: pastEvents,
		OccurredAt: now,
	})

	uc.logger.Info("HighlightsReminder: reminder published for %d events", len(pastEvents))

	return &Response{Reminded: len(pastEvents)}, nil
}
