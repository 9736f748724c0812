package verify

import (
	"net/http"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/api/middleware"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
)

const msgTokenRequired = "требуется токен доступа"

// Response HTTP response model
type Response struct {
	Success bool                  `json:"success"`
	Admin   *models.AdminIdentity `json:"admin"`
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/auth/verify (за middleware Auth)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetAdmin(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/verify - Admin missing in context")
		handlers.RespondForbidden(w, msgTokenRequired)
		return
	}

	h.logger.Info("GET /auth/verify - Token verified: admin_id=%d", admin.ID)
	handlers.RespondJSON(w, http.StatusOK, &Response{Success: true, Admin: admin})
}
