package middleware

import (
	"net/http"
	"strings"

	gorillaHandlers "github.com/gorilla/handlers"
)

const corsMaxAge = 600

// CORS разрешает запросы с перечисленных origin ("*" - с любого)
// Preflight (OPTIONS) завершается здесь же с 204
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins = append(origins, strings.TrimRight(strings.TrimSpace(origin), "/"))
	}

	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gorillaHandlers.MaxAge(corsMaxAge),
		gorillaHandlers.OptionStatusCode(http.StatusNoContent),
	)
}
