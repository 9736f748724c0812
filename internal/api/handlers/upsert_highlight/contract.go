package upsert_highlight

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
)

type HighlightService interface {
	Upsert(ctx context.Context, req *models.UpsertRequest) (*models.HighlightResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
