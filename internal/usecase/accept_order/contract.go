package accept_order

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// OrderRepository интерфейс репозитория заявок
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, rejectionReason *string) error
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDay, error)
	MarkBusy(ctx context.Context, date time.Time, orderID int64) (*domain.CalendarDay, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(event domain.Event)
}

// Metrics бизнес-метрики
type Metrics interface {
	IncOrderReviewed(decision string)
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
