package auth

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/pkg/token"
)

// AdminRepository интерфейс репозитория администраторов
type AdminRepository interface {
	CreateIfAbsent(ctx context.Context, admin *domain.Admin) (bool, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// TokenManager выпуск и проверка bearer токенов
type TokenManager interface {
	Issue(adminID int64, username string) (string, time.Time, error)
	Parse(raw string) (*token.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
