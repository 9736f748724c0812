package news

import (
	"context"
	"io"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// NewsRepository интерфейс репозитория новостей
type NewsRepository interface {
	Create(ctx context.Context, n *domain.News) (*domain.News, error)
	GetByID(ctx context.Context, id int64) (*domain.News, error)
	List(ctx context.Context, publishedOnly bool) ([]*domain.News, error)
	Update(ctx context.Context, n *domain.News) error
	TogglePublished(ctx context.Context, id int64) (bool, error)
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
