package update_news

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
)

type NewsService interface {
	Update(ctx context.Context, id int64, req *models.NewsRequest) (*models.NewsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
