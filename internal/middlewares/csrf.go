package middlewares

import (
	"net/http"

	"github.com/regionboard/backend/internal/auth"
)

// CSRFMiddleware verifies the signed CSRF token on form mutation routes.
// The token is read from the X-CSRF-Token header or the csrf_token form
// field.
func CSRFMiddleware(generator *auth.CSRFGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-CSRF-Token")
			if token == "" {
				token = r.PostFormValue("csrf_token")
			}

			if token == "" || generator.Validate(token) != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"invalid or missing csrf token"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
