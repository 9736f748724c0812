package list_orders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/orders/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	orders []models.OrderResponse
	err    error
}

func (s serviceStub) List(context.Context) (*models.OrderListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.OrderListResponse{Orders: s.orders}, nil
}

func serve(svc serviceStub) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	return rec
}

func TestHandler_List(t *testing.T) {
	rec := serve(serviceStub{orders: []models.OrderResponse{
		{ID: 2, ClientName: "Анна", Status: "pending", EventDate: "2026-06-12"},
		{ID: 1, ClientName: "Иван", Status: "accepted", EventDate: "2026-05-01"},
	}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"client_name":"Анна"`)
	assert.Less(t,
		strings.Index(rec.Body.String(), `"id":2`),
		strings.Index(rec.Body.String(), `"id":1`))
}

func TestHandler_Empty(t *testing.T) {
	rec := serve(serviceStub{orders: []models.OrderResponse{}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"orders":[]}`, rec.Body.String())
}

func TestHandler_InternalError(t *testing.T) {
	rec := serve(serviceStub{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"внутренняя ошибка сервера","code":500}`, rec.Body.String())
}
