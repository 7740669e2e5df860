package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login authenticates a user and opens a session.
	//
	// An unknown username and a wrong password both return
	// models.ErrInvalidCredentials; the caller cannot tell which check failed.
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error)
	// Method Identify resolves a session token to a user.
	//
	// A nil user with a nil error means the token is missing, expired or
	// points at a deleted user.
	Identify(ctx context.Context, token string) (*models.User, error)
	// Method Logout invalidates a session token.
	Logout(ctx context.Context, token string) error
	// Method ResetPassword overwrites the password hash of the named user.
	//
	// The result does not reveal whether the username exists.
	ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error
	// Method ListUsers returns all user accounts.
	ListUsers(ctx context.Context) ([]models.User, error)
	// Method DeleteExpiredSessions removes every session past its expiry and
	// returns the number of deleted rows.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// AuthHandler handles HTTP requests for login, logout and account upkeep
type AuthHandler struct {
	BaseHandler
	service AuthService
	csrf    *auth.CSRFGenerator
	apiKey  string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, csrf *auth.CSRFGenerator, apiKey string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		csrf:        csrf,
		apiKey:      apiKey,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Get("/logout", h.Logout)
	r.Post("/mot_de_passe_oublie", h.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(h.service))
		r.Get("/profile", h.Profile)
		r.Get("/api/v1/csrf", h.CSRFToken)
	})

	r.With(middlewares.RequireRole(h.service, models.RoleAdmin)).
		Get("/api/v1/utilisateurs", h.ListUsers)
	r.With(middlewares.APIKeyMiddleware(h.apiKey)).
		Delete("/api/v1/sessions/expired", h.PurgeSessions)
}

// Login handles POST /login
// @Summary Log in
// @Description Authenticate with username and password and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginRequest true "Credentials"
// @Success 200 {object} model.User
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := h.readLoginRequest(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			if wantsJSON(r) {
				h.respondError(w, http.StatusUnauthorized, "invalid credentials")
			} else {
				http.Redirect(w, r, "/login?erreur=1", http.StatusSeeOther)
			}
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if wantsJSON(r) {
		user, err := h.service.Identify(r.Context(), session.Token)
		if err != nil || user == nil {
			h.respondError(w, http.StatusInternalServerError, "login failed")
			return
		}
		h.respondJSON(w, http.StatusOK, user)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// readLoginRequest accepts the JSON body of API clients and the form body
// of the login page.
func (h *AuthHandler) readLoginRequest(r *http.Request) (*models.LoginRequest, error) {
	if wantsJSON(r) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &models.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}, nil
}

// Logout handles GET /logout. The session row is removed and the cookie
// cleared; logging out without a session is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middlewares.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to delete session", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewares.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ResetPassword handles POST /mot_de_passe_oublie
// @Summary Reset a password
// @Description Overwrite the password of the named account; the response does not reveal whether the account exists
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.PasswordResetRequest true "Username and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /mot_de_passe_oublie [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if wantsJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Username = r.PostFormValue("username")
		req.NewPassword = r.PostFormValue("new_password")
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		if errors.Is(err, models.ErrMissingFields) {
			h.respondError(w, http.StatusBadRequest, "missing fields")
			return
		}
		h.logger.Error("password reset failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "password reset failed")
		return
	}

	if wantsJSON(r) {
		h.respondJSON(w, http.StatusOK, map[string]string{
			"message": "if the account exists, the password has been reset",
		})
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Profile handles GET /profile and returns the authenticated account.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewares.CurrentUser(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.respondJSON(w, http.StatusOK, user)
}

// CSRFToken handles GET /api/v1/csrf and mints a token for the form pages.
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.csrf.Generate()
	if err != nil {
		h.logger.Error("failed to generate csrf token", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate csrf token")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"csrf_token": token})
}

// ListUsers handles GET /api/v1/utilisateurs
// @Summary List user accounts
// @Description List all accounts; requires the admin role
// @Tags auth
// @Produce json
// @Success 200 {array} model.User
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/v1/utilisateurs [get]
func (h *AuthHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	h.respondJSON(w, http.StatusOK, users)
}

// PurgeSessions handles DELETE /api/v1/sessions/expired. It is meant for a
// cron job and is gated by the API key, not by a session.
func (h *AuthHandler) PurgeSessions(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteExpiredSessions(r.Context())
	if err != nil {
		h.logger.Error("failed to purge sessions", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to purge sessions")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
