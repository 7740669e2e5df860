package middlewares

import (
	"context"
	"net/http"

	"github.com/regionboard/backend/internal/models"
)

const userKey contextKey = "currentUser"

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// IdentityResolver resolves an opaque session token to a user. A nil user
// with a nil error means the token is missing, expired or orphaned.
type IdentityResolver interface {
	Identify(ctx context.Context, token string) (*models.User, error)
}

// RequireSession guards API handlers: the wrapped handler never runs
// without a resolved identity in the request context. Unauthenticated
// requests get a 401 JSON response.
func RequireSession(resolver IdentityResolver) func(http.Handler) http.Handler {
	return guard(resolver, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"authentication required"}`))
	})
}

// RequireSessionPage guards page handlers: unauthenticated requests are
// redirected to the login page instead of receiving a JSON error.
func RequireSessionPage(resolver IdentityResolver) func(http.Handler) http.Handler {
	return guard(resolver, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}

// RequireRole guards handlers that need at least the given role. It
// resolves the identity itself, so it does not need to be nested inside
// RequireSession.
func RequireRole(resolver IdentityResolver, role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolve(resolver, r)
			if user == nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
				return
			}

			if user.Role.Level() < role.Level() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"insufficient permissions"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// guard builds a middleware that resolves the session and either stores
// the identity in context or hands the request to onFail.
func guard(resolver IdentityResolver, onFail http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolve(resolver, r)
			if user == nil {
				onFail(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// resolve extracts the session cookie and asks the resolver for the
// identity. Any resolver failure counts as unauthenticated.
func resolve(resolver IdentityResolver, r *http.Request) *models.User {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	user, err := resolver.Identify(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return user
}

// CurrentUser retrieves the authenticated user from context
func CurrentUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}
