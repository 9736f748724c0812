package update_news

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
)

const (
	msgInvalidNewsID    = "некорректный ID новости"
	msgInvalidForm      = "некорректная форма запроса"
	msgInvalidPublished = "поле published должно быть true или false"
	msgInvalidInput     = "заголовок и текст обязательны, заголовок не длиннее 200 символов"
	msgNotFound         = "новость не найдена"
	msgUnsupportedImage = "допустимы только изображения jpeg, jpg, png, webp"
	msgImageTooLarge    = "изображение слишком большое"
	msgUpdated          = "новость обновлена"
)

type Handler struct {
	service       NewsService
	maxUploadSize int64
	logger        Logger
}

func NewHandler(service NewsService, maxUploadSize int64, logger Logger) *Handler {
	return &Handler{
		service:       service,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// Handle PUT /api/news/{id} (multipart/form-data)
// Без нового изображения старое сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	newsID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /news/{id} - Invalid news ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNewsID)
		return
	}

	upload, err := handlers.ParseMultipart(w, r, h.maxUploadSize, "image")
	if err != nil {
		if errors.Is(err, handlers.ErrFileTooLarge) {
			h.logger.Warn("PUT /news/{id} - Upload too large: news_id=%d", newsID)
			handlers.RespondBadRequest(w, msgImageTooLarge)
			return
		}
		h.logger.Warn("PUT /news/{id} - Invalid form: news_id=%d, error=%v", newsID, err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer upload.Close()

	req, err := toServiceRequest(r, upload)
	if err != nil {
		h.logger.Warn("PUT /news/{id} - Invalid published flag: news_id=%d", newsID)
		handlers.RespondBadRequest(w, msgInvalidPublished)
		return
	}

	item, err := h.service.Update(r.Context(), newsID, req)
	if err != nil {
		switch {
		case errors.Is(err, news.ErrInvalidInput):
			h.logger.Warn("PUT /news/{id} - Invalid input: news_id=%d, error=%v", newsID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, news.ErrNewsNotFound):
			h.logger.Warn("PUT /news/{id} - News not found: news_id=%d", newsID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, news.ErrUnsupportedImage):
			h.logger.Warn("PUT /news/{id} - Unsupported image: news_id=%d", newsID)
			handlers.RespondBadRequest(w, msgUnsupportedImage)

		case errors.Is(err, news.ErrImageTooLarge):
			h.logger.Warn("PUT /news/{id} - Image too large: news_id=%d", newsID)
			handlers.RespondBadRequest(w, msgImageTooLarge)

		default:
			h.logger.Error("PUT /news/{id} - Failed to update news: news_id=%d, error=%v", newsID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /news/{id} - News updated: news_id=%d", newsID)
	handlers.RespondJSON(w, http.StatusOK, &NewsResponse{
		Success: true,
		Message: msgUpdated,
		NewsID:  item.ID,
		News:    item,
	})
}
