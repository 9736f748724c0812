package verify

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/middleware"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

func TestHandler(t *testing.T) {
	h := NewHandler(logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req = req.WithContext(middleware.WithAdmin(req.Context(), &models.AdminIdentity{ID: 2, Username: "manager"}))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"admin":{"id":2,"username":"manager"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
