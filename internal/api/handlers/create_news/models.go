package create_news

import (
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
)

// NewsResponse HTTP response model
type NewsResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	NewsID  int64                `json:"news_id"`
	News    *models.NewsResponse `json:"news"`
}

// toServiceRequest собирает запрос сервиса из multipart формы: title, content, published, image
func toServiceRequest(r *http.Request, upload *handlers.Upload) (*models.NewsRequest, error) {
	published, err := handlers.FormBool(r, "published", false)
	if err != nil {
		return nil, err
	}

	req := &models.NewsRequest{
		Title:     handlers.FormValue(r, "title"),
		Content:   handlers.FormValue(r, "content"),
		Published: published,
	}
	if upload != nil {
		req.Image = &models.FileUpload{Filename: upload.Filename, Content: upload.File}
	}
	return req, nil
}
