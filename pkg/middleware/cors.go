package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser client origin with credentials so the
// session cookie travels on cross-origin requests.
func CORS(clientOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{clientOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
