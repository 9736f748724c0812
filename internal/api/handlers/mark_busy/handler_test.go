package mark_busy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/domain"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	got *models.MarkBusyRequest
	err error
}

func (s *serviceStub) MarkManualBusy(_ context.Context, req *models.MarkBusyRequest) (*models.CalendarDayResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.CalendarDayResponse{ID: 9, Date: req.Date.Format(domain.DateFormat), Status: "busy", ManualReason: req.ManualReason}, nil
}

func serve(svc *serviceStub, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/busy", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_MarkBusy(t *testing.T) {
	svc := &serviceStub{}

	rec := serve(svc, `{"date":"2026-12-25","manual_reason":"Новогодний корпоратив"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MarkBusyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(9), resp.CalendarID)
	assert.Equal(t, "2026-12-25", resp.Day.Date)
	assert.Equal(t, "Новогодний корпоратив", *svc.got.ManualReason)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"missing date", `{"manual_reason":"x"}`, nil, http.StatusBadRequest},
		{"bad date", `{"date":"25/12/2026"}`, nil, http.StatusBadRequest},
		{"reason too long", `{"date":"2026-12-25"}`, calendar.ErrInvalidInput, http.StatusBadRequest},
		{"internal", `{"date":"2026-12-25"}`, calendar.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&serviceStub{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
