package get_highlight

import (
	"context"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
)

type HighlightService interface {
	GetByDate(ctx context.Context, date time.Time) (*models.HighlightResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
