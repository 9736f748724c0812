package submit_order

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// OrderRepository интерфейс репозитория заявок
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error)
	UpsertPending(ctx context.Context, date time.Time, orderID int64) (*domain.CalendarDay, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация доменных событий (доставка асинхронная)
type EventPublisher interface {
	Publish(event domain.Event)
}

// Metrics бизнес-метрики
type Metrics interface {
	IncOrderSubmitted()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
