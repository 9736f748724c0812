package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверка доступности БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

// Response HTTP response model
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := Response{Status: "ok", Database: "ok", Time: time.Now().UTC().Format(time.RFC3339)}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /health - Database ping failed: %v", err)
		resp.Status, resp.Database = "degraded", "unavailable"
		status = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, status, resp)
}
