package middleware

import (
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
)

// TokenVerifier проверка bearer токена администратора
type TokenVerifier interface {
	Verify(raw string) (*models.AdminIdentity, error)
}

// MetricsRecorder запись метрик HTTP запросов
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
