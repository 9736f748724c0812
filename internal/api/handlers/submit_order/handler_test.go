package submit_order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/submit_order"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type useCaseStub struct {
	got *submitOrder.Request
	err error
}

func (u *useCaseStub) Execute(_ context.Context, req *submitOrder.Request) (*submitOrder.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return &submitOrder.Response{
		OrderID:   12,
		EventDate: req.EventDate,
		Status:    "pending",
		CreatedAt: time.Now(),
	}, nil
}

func serve(uc *useCaseStub, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

const validBody = `{"client_name":"Анна","client_phone":"+7 999 123-45-67","event_date":"2026-06-12","message":"Свадьба"}`

func TestHandler_Created(t *testing.T) {
	uc := &useCaseStub{}

	rec := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(12), resp.OrderID)
	assert.Equal(t, "2026-06-12", resp.EventDate)

	require.NotNil(t, uc.got)
	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC), uc.got.EventDate)
	assert.Equal(t, "Свадьба", *uc.got.Message)
}

func TestHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"client_name":`},
		{"missing phone", `{"client_name":"Анна","event_date":"2026-06-12"}`},
		{"bad date", `{"client_name":"Анна","client_phone":"+79991234567","event_date":"12.06.2026"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseStub{}
			rec := serve(uc, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandler_UseCaseErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: client_email has invalid format", submitOrder.ErrInvalidInput), http.StatusBadRequest},
		{submitOrder.ErrDateInPast, http.StatusBadRequest},
		{submitOrder.ErrDateBusy, http.StatusConflict},
		{submitOrder.ErrDatePending, http.StatusConflict},
		{fmt.Errorf("%w: db down", submitOrder.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&useCaseStub{err: tt.err}, validBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_InvalidInputDetail(t *testing.T) {
	rec := serve(&useCaseStub{err: fmt.Errorf("%w: client_email has invalid format", submitOrder.ErrInvalidInput)}, validBody)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidInput+": client_email has invalid format", resp["error"])
}
