package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type verifierStub struct{}

func (verifierStub) Verify(raw string) (*models.AdminIdentity, error) {
	if raw != "good-token" {
		return nil, errors.New("bad token")
	}
	return &models.AdminIdentity{ID: 1, Username: "admin"}, nil
}

func protected(t *testing.T) http.Handler {
	return Auth(verifierStub{}, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, ok := GetAdmin(r.Context())
		require.True(t, ok)
		assert.Equal(t, "admin", admin.Username)
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusForbidden},
		{"wrong scheme", "Basic abc", http.StatusForbidden},
		{"empty bearer", "Bearer ", http.StatusForbidden},
		{"invalid token", "Bearer expired", http.StatusUnauthorized},
		{"valid token", "Bearer good-token", http.StatusNoContent},
		{"lowercase scheme", "bearer good-token", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected(t).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetAdmin_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetAdmin(req.Context())
	assert.False(t, ok)
}

type recorderStub struct {
	method string
	route  string
	status int
}

func (r *recorderStub) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	r.method, r.route, r.status = method, route, status
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	rec := &recorderStub{}
	router := mux.NewRouter()
	router.Use(Metrics(rec))
	router.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/15", nil))

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/orders/{id}", rec.route)
	assert.Equal(t, http.StatusNotFound, rec.status)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := CORS([]string{"https://euroasia.example/"})(next)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
		req.Header.Set("Origin", "https://euroasia.example")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://euroasia.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/calendar", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		req.Header.Set("Origin", "https://euroasia.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://euroasia.example", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("wildcard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
		req.Header.Set("Origin", "https://any.example")
		rec := httptest.NewRecorder()

		CORS([]string{"*"})(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

type errorLogStub struct {
	errors []string
}

func (l *errorLogStub) Info(string, ...interface{}) {}
func (l *errorLogStub) Warn(string, ...interface{}) {}
func (l *errorLogStub) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}

func TestRecovery(t *testing.T) {
	log := &errorLogStub{}
	h := Recovery(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotEmpty(t, log.errors)
	assert.Contains(t, log.errors[0], "boom")
}
