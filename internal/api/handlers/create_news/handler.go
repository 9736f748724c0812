package create_news

import (
	"errors"
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
)

const (
	msgInvalidForm      = "некорректная форма запроса"
	msgInvalidPublished = "поле published должно быть true или false"
	msgInvalidInput     = "заголовок и текст обязательны, заголовок не длиннее 200 символов"
	msgUnsupportedImage = "допустимы только изображения jpeg, jpg, png, webp"
	msgImageTooLarge    = "изображение слишком большое"
	msgCreated          = "новость добавлена"
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

// Handle POST /api/news (multipart/form-data)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	upload, err := handlers.ParseMultipart(w, r, h.maxUploadSize, "image")
	if err != nil {
		if errors.Is(err, handlers.ErrFileTooLarge) {
			h.logger.Warn("POST /news - Upload too large")
			handlers.RespondBadRequest(w, msgImageTooLarge)
			return
		}
		h.logger.Warn("POST /news - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer upload.Close()

	req, err := toServiceRequest(r, upload)
	if err != nil {
		h.logger.Warn("POST /news - Invalid published flag: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPublished)
		return
	}

	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, news.ErrInvalidInput):
			h.logger.Warn("POST /news - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, news.ErrUnsupportedImage):
			h.logger.Warn("POST /news - Unsupported image")
			handlers.RespondBadRequest(w, msgUnsupportedImage)

		case errors.Is(err, news.ErrImageTooLarge):
			h.logger.Warn("POST /news - Image too large")
			handlers.RespondBadRequest(w, msgImageTooLarge)

		default:
			h.logger.Error("POST /news - Failed to create news: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /news - News created: news_id=%d, published=%t", item.ID, item.Published)
	handlers.RespondJSON(w, http.StatusCreated, &NewsResponse{
		Success: true,
		Message: msgCreated,
		NewsID:  item.ID,
		News:    item,
	})
}
