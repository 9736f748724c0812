package highlights_reminder

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	ListPastBusy(ctx context.Context, filter domain.PastBusyFilter) ([]*domain.PastEvent, error)
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(event domain.Event)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
