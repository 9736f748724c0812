package reject_order

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rejectOrder "github.com/m04kA/EuroAsia-BookingService/internal/usecase/reject_order"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type useCaseStub struct {
	got *rejectOrder.Request
	err error
}

func (u *useCaseStub) Execute(_ context.Context, req *rejectOrder.Request) (*rejectOrder.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return &rejectOrder.Response{OrderID: req.OrderID, Status: "rejected"}, nil
}

func serve(uc *useCaseStub, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/orders/3/reject", body)
	req = mux.SetURLVars(req, map[string]string{"id": "3"})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_WithReason(t *testing.T) {
	uc := &useCaseStub{}

	rec := serve(uc, strings.NewReader(`{"rejection_reason":"дата занята"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Reason)
	assert.Equal(t, "дата занята", *uc.got.Reason)
	assert.Equal(t, int64(3), uc.got.OrderID)
}

func TestHandler_EmptyBody(t *testing.T) {
	uc := &useCaseStub{}

	rec := serve(uc, http.NoBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Reason)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"broken json", `{"rejection_reason":`, nil, http.StatusBadRequest},
		{"reason too long", `{}`, rejectOrder.ErrInvalidInput, http.StatusBadRequest},
		{"not found", `{}`, rejectOrder.ErrOrderNotFound, http.StatusNotFound},
		{"not pending", `{}`, rejectOrder.ErrOrderNotPending, http.StatusConflict},
		{"internal", `{}`, rejectOrder.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&useCaseStub{err: tt.err}, strings.NewReader(tt.body))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
