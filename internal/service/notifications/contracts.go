package notifications

import "context"

// Sink канал доставки уведомлений (Telegram, почта, лог)
type Sink interface {
	Name() string
	Send(ctx context.Context, text string) error
}

// Metrics счётчики доставки уведомлений
type Metrics interface {
	IncNotification(sink, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
