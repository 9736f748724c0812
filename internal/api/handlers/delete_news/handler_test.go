package delete_news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	deleted []int64
	err     error
}

func (s *serviceStub) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func serve(svc *serviceStub, id string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/news/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Delete(t *testing.T) {
	svc := &serviceStub{}

	rec := serve(svc, "5")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"новость удалена"}`, rec.Body.String())
	assert.Equal(t, []int64{5}, svc.deleted)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"invalid id", "abc", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
		{"not found", "5", news.ErrNewsNotFound, http.StatusNotFound},
		{"internal", "5", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&serviceStub{err: tt.err}, tt.id)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
