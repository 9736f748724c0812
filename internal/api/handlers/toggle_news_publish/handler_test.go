package toggle_news_publish

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/EuroAsia-BookingService/internal/service/news"
	"github.com/m04kA/EuroAsia-BookingService/pkg/logger"
)

type serviceStub struct {
	published bool
	err       error
}

func (s serviceStub) TogglePublish(context.Context, int64) (bool, error) {
	return s.published, s.err
}

func serve(svc serviceStub) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodPatch, "/api/news/2/toggle-publish", nil), map[string]string{"id": "2"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	rec := serve(serviceStub{published: true})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"новость опубликована","published":true}`, rec.Body.String())

	rec = serve(serviceStub{published: false})
	assert.JSONEq(t, `{"success":true,"message":"новость скрыта","published":false}`, rec.Body.String())

	assert.Equal(t, http.StatusNotFound, serve(serviceStub{err: news.ErrNewsNotFound}).Code)
}
