package get_calendar_range

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetRange(ctx context.Context, start, end *time.Time) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
