package orders

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
)

// OrderRepository интерфейс репозитория заявок
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
