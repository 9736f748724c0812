package calendar

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.CalendarDay, error)
	List(ctx context.Context, filter domain.CalendarFilter) ([]*domain.CalendarEntry, error)
	ListPastBusy(ctx context.Context, filter domain.PastBusyFilter) ([]*domain.PastEvent, error)
	MarkManualBusy(ctx context.Context, date time.Time, reason *string) (*domain.CalendarDay, error)
	Delete(ctx context.Context, id int64) error
}

// HighlightRepository материалы, привязанные к записи календаря
type HighlightRepository interface {
	GetByCalendarID(ctx context.Context, calendarID int64) (*domain.Highlight, error)
}

// FileStore хранилище загруженных изображений
type FileStore interface {
	Remove(publicPath string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
