package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORS permits every origin to issue GET and POST requests, including preflight.
func CORS(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(next)
}
