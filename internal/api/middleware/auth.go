package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/EuroAsia-BookingService/internal/api/handlers"
	"github.com/m04kA/EuroAsia-BookingService/internal/service/auth/models"
)

const (
	msgTokenRequired = "требуется токен доступа"
	msgInvalidToken  = "недействительный или просроченный токен"
)

type contextKey string

const adminContextKey contextKey = "admin"

// Auth пропускает только запросы с действительным bearer токеном
// Нет токена - 403, токен недействителен - 401
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgTokenRequired)
				return
			}

			admin, err := verifier.Verify(raw)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
		})
	}
}

// WithAdmin кладёт администратора в контекст
func WithAdmin(ctx context.Context, admin *models.AdminIdentity) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// GetAdmin достаёт администратора, установленного middleware Auth
func GetAdmin(ctx context.Context) (*models.AdminIdentity, bool) {
	admin, ok := ctx.Value(adminContextKey).(*models.AdminIdentity)
	return admin, ok && admin != nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
