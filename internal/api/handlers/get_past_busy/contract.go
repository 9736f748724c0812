package get_past_busy

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetPastBusy(ctx context.Context) (*models.PastEventsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
