package get_calendar

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetAll(ctx context.Context) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
