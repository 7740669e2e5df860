package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// adminUsername is the account seeded at bootstrap.
const adminUsername = "admin"

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user into the database.
	//
	// If some error occurs during user creation, the error will be returned.
	Create(ctx context.Context, user *models.User) error
	// Method GetByUsername retrieves a user by username.
	//
	// If user with such username does not exist, models.ErrNotFound will be
	// returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, models.ErrNotFound will be
	// returned together with "nil" value.
	GetByID(ctx context.Context, userID int) (*models.User, error)
	// Method ExistsByUsername checks if a user with such username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Method List retrieves all users ordered by id.
	List(ctx context.Context) ([]models.User, error)
	// Method UpdatePassword replaces the password hash of a user.
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
}

// SessionRepository is the interface that wraps methods for session data access
type SessionRepository interface {
	// Method Create inserts a new session into the database.
	Create(ctx context.Context, session *models.Session) error
	// Method GetByToken retrieves a session by token string.
	//
	// If no session with such token exists, models.ErrNotFound will be
	// returned together with "nil" value.
	GetByToken(ctx context.Context, token string) (*models.Session, error)
	// Method DeleteByToken deletes a session by token string. Deleting an
	// absent token is not an error.
	DeleteByToken(ctx context.Context, token string) error
	// Method DeleteExpired removes sessions that expired before the given
	// time and returns the number of deleted rows.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// authService owns login, logout, identity resolution and password resets
type authService struct {
	userRepo    UserRepository
	sessionRepo SessionRepository
	sessionTTL  time.Duration
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *authService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// Login authenticates a user and opens a session. An unknown username and a
// wrong password both return models.ErrInvalidCredentials; the caller cannot
// tell which check failed.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	// The bcrypt comparison is deliberately expensive; it runs here, never
	// under a registry lock.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Identify resolves a session token to a user. It returns a nil user when
// the token is missing, expired or points at a deleted user; expired rows
// are removed on sight.
func (s *authService) Identify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
			s.logger.Warn("failed to delete expired session", zap.Error(err))
		}
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Logout invalidates a session token; later Identify calls resolve to no one.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessionRepo.DeleteByToken(ctx, token)
}

// ResetPassword overwrites the password hash of the named user. The result
// does not reveal whether the username exists; an unknown username is only
// logged at debug level.
func (s *authService) ResetPassword(ctx context.Context, req *models.PasswordResetRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.NewPassword == "" {
		return fmt.Errorf("%w: username, new_password", models.ErrMissingFields)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Debug("password reset for unknown username", zap.String("username", username))
			return nil
		}
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, string(passwordHash))
}

// ListUsers returns all user accounts.
func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// EnsureAdmin seeds the admin account when it does not exist yet. The
// bootstrap password comes from configuration and is hashed before storage.
func (s *authService) EnsureAdmin(ctx context.Context, password string) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, adminUsername)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     adminUsername,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	s.logger.Info("seeded admin account", zap.Int("userId", admin.ID))
	return nil
}

// DeleteExpiredSessions removes every session past its expiry.
func (s *authService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx, time.Now())
}
