package list_news

import (
	"context"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
)

type NewsService interface {
	ListPublished(ctx context.Context) (*models.NewsListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
