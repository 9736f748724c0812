package get_calendar_range

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/calendar/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	start, end *time.Time
	err        error
}

func (s *serviceStub) GetRange(_ context.Context, start, end *time.Time) (*models.CalendarResponse, error) {
	s.start, s.end = start, end
	if start == nil || end == nil {
		return nil, calendar.ErrInvalidRange
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.CalendarResponse{Calendar: []models.CalendarDayResponse{{ID: 1, Date: "2026-06-12", Status: "busy"}}}, nil
}

func serve(svc *serviceStub, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/range"+query, nil)
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Range(t *testing.T) {
	svc := &serviceStub{}

	rec := serve(svc, "?start_date=2026-06-01&end_date=2026-06-30")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"calendar":[{"id":1,"date":"2026-06-12","status":"busy","order_id":null,"manual_reason":null,"created_at":""}]}`,
		rec.Body.String())
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *svc.start)
}

func TestHandler_InvalidQuery(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&serviceStub{}, "?start_date=2026-13-01&end_date=2026-06-30").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&serviceStub{}, "?start_date=2026-06-01").Code)
}

func TestHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"start after end", fmt.Errorf("%w: start_date is after end_date", calendar.ErrInvalidRange), http.StatusBadRequest, msgInvalidRange},
		{"internal", fmt.Errorf("%w: GetRange - repository error: db down", calendar.ErrInternal), http.StatusInternalServerError, "внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&serviceStub{err: tt.err}, "?start_date=2026-06-30&end_date=2026-06-01")
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
