package update_news

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/news/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	id        int64
	got       *models.NewsRequest
	imageBody string
	err       error
}

func (s *serviceStub) Update(_ context.Context, id int64, req *models.NewsRequest) (*models.NewsResponse, error) {
	s.id, s.got = id, req
	if req.Image != nil {
		body, _ := io.ReadAll(req.Image.Content)
		s.imageBody = string(body)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.NewsResponse{ID: id, Title: req.Title, Published: req.Published}, nil
}

type filePart struct {
	name    string
	content string
}

func formRequest(t *testing.T, id string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("image", file.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/news/"+id, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestHandler_Update(t *testing.T) {
	svc := &serviceStub{}
	rec := httptest.NewRecorder()

	NewHandler(svc, 1<<20, logger.NewNop()).Handle(rec, formRequest(t, "3", map[string]string{
		"title":     "  Новый зал ",
		"content":   "Открываемся в июне",
		"published": "true",
	}, &filePart{name: "hall.png", content: "png-bytes"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.id)
	assert.Equal(t, "Новый зал", svc.got.Title)
	assert.True(t, svc.got.Published)
	require.NotNil(t, svc.got.Image)
	assert.Equal(t, "hall.png", svc.got.Image.Filename)
	assert.Equal(t, "png-bytes", svc.imageBody)
	assert.Contains(t, rec.Body.String(), `"news_id":3`)
	assert.Contains(t, rec.Body.String(), `"message":"новость обновлена"`)
}

func TestHandler_UpdateKeepsImage(t *testing.T) {
	svc := &serviceStub{}
	rec := httptest.NewRecorder()

	NewHandler(svc, 1<<20, logger.NewNop()).Handle(rec, formRequest(t, "3", map[string]string{
		"title":   "Без картинки",
		"content": "Текст",
	}, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Image)
	assert.False(t, svc.got.Published)
}

func TestHandler_Errors(t *testing.T) {
	valid := map[string]string{"title": "a", "content": "b"}

	tests := []struct {
		name   string
		id     string
		fields map[string]string
		err    error
		status int
	}{
		{"invalid id", "x", valid, nil, http.StatusBadRequest},
		{"bad published", "3", map[string]string{"title": "a", "content": "b", "published": "maybe"}, nil, http.StatusBadRequest},
		{"invalid input", "3", map[string]string{"title": ""}, news.ErrInvalidInput, http.StatusBadRequest},
		{"not found", "3", valid, news.ErrNewsNotFound, http.StatusNotFound},
		{"unsupported image", "3", valid, news.ErrUnsupportedImage, http.StatusBadRequest},
		{"image too large", "3", valid, news.ErrImageTooLarge, http.StatusBadRequest},
		{"internal", "3", valid, news.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&serviceStub{err: tt.err}, 1<<20, logger.NewNop()).Handle(rec, formRequest(t, tt.id, tt.fields, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
