package toggle_news_publish

import "context"

type NewsService interface {
	TogglePublish(ctx context.Context, id int64) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
