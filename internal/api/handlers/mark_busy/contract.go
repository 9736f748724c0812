package mark_busy

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	MarkManualBusy(ctx context.Context, req *models.MarkBusyRequest) (*models.CalendarDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
