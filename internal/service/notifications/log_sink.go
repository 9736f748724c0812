package notifications

import "context"

// LogSink пишет уведомления в лог; используется, когда внешние каналы не настроены
type LogSink struct {
	logger Logger
}

func NewLogSink(logger Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Name() string {
	return "log"
}

func (s *LogSink) Send(_ context.Context, text string) error {
	s.logger.Info("Notifications: (not sent, no channels configured)\n%s", text)
	return nil
}
