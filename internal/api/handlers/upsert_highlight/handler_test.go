package upsert_highlight

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/middleware"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/highlights"
	highlightModels "github.com/m04kA/EuroAsia-BookingService/internal/service/highlights/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	got      *highlightModels.UpsertRequest
	imageLen int
	err      error
}

func (s *serviceStub) Upsert(_ context.Context, req *highlightModels.UpsertRequest) (*highlightModels.HighlightResponse, error) {
	s.got = req
	if req.Image != nil {
		data, _ := io.ReadAll(req.Image.Content)
		s.imageLen = len(data)
	}
	if s.err != nil {
		return nil, s.err
	}
	return &highlightModels.HighlightResponse{ID: 8, CalendarID: req.CalendarID, VideoURL: req.VideoURL}, nil
}

func formRequest(t *testing.T, fields map[string]string, withImage bool) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "cover.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("jpeg-data"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/highlights", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(middleware.WithAdmin(req.Context(), &models.AdminIdentity{ID: 1, Username: "admin"}))
}

func TestHandler_InstagramAliasAndImage(t *testing.T) {
	svc := &serviceStub{}
	rec := httptest.NewRecorder()

	NewHandler(svc, 1<<20, logger.NewNop()).Handle(rec, formRequest(t, map[string]string{
		"calendar_id":   "3",
		"instagram_url": "https://instagram.com/reel/abc",
	}, true))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.got.CalendarID)
	assert.Equal(t, "https://instagram.com/reel/abc", *svc.got.VideoURL)
	assert.Equal(t, "admin", *svc.got.UploadedBy)
	assert.Equal(t, "cover.jpg", svc.got.Image.Filename)
	assert.Equal(t, len("jpeg-data"), svc.imageLen)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]string
		err    error
		status int
	}{
		{"missing calendar id", map[string]string{"video_url": "https://x"}, nil, http.StatusBadRequest},
		{"calendar day not found", map[string]string{"calendar_id": "99"}, highlights.ErrCalendarDayNotFound, http.StatusNotFound},
		{"unsupported image", map[string]string{"calendar_id": "3"}, highlights.ErrUnsupportedImage, http.StatusBadRequest},
		{"internal", map[string]string{"calendar_id": "3"}, highlights.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&serviceStub{err: tt.err}, 1<<20, logger.NewNop()).Handle(rec, formRequest(t, tt.fields, false))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
