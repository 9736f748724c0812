package highlights

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// HighlightRepository интерфейс репозитория материалов
type HighlightRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.Highlight, error)
	GetByCalendarID(ctx context.Context, calendarID int64) (*domain.Highlight, error)
	Upsert(ctx context.Context, h *domain.Highlight) (*domain.Highlight, error)
	Delete(ctx context.Context, id int64) (*string, error)
}

// FileStore хранилище загруженных изображений
type FileStore interface {
	Save(category, originalName string, src io.Reader) (string, error)
	Remove(publicPath string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
