package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/regionboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users         map[string]*models.User
	createErr     error
	updatedUserID int
	updatedHash   string
	existsErr     error
	createdUser   *models.User
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = len(m.users) + 1
	m.users[user.Username] = user
	m.createdUser = user
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, models.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[username]
	return ok, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int, passwordHash string) error {
	m.updatedUserID = userID
	m.updatedHash = passwordHash
	return nil
}

// mockSessionRepository is a mock implementation of SessionRepository
type mockSessionRepository struct {
	sessions  map[string]*models.Session
	createErr error
	deleted   []string
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{sessions: make(map[string]*models.Session)}
}

func (m *mockSessionRepository) Create(ctx context.Context, session *models.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.sessions[session.Token] = session
	return nil
}

func (m *mockSessionRepository) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	session, ok := m.sessions[token]
	if !ok {
		return nil, models.ErrNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	delete(m.sessions, token)
	m.deleted = append(m.deleted, token)
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	var deleted int64
	for token, session := range m.sessions {
		if session.ExpiresAt.Before(before) {
			delete(m.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

func seedUser(t *testing.T, username, password string, role models.Role) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: 1, Username: username, PasswordHash: string(hash), Role: role}
}

func TestAuthService_LoginThenIdentify(t *testing.T) {
	user := seedUser(t, "admin", "Password123!", models.RoleAdmin)
	userRepo := newMockUserRepository(user)
	sessionRepo := newMockSessionRepository()
	svc := NewAuthService(userRepo, sessionRepo, 24*time.Hour, zap.NewNop())

	session, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "admin",
		Password: "Password123!",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)

	identified, err := svc.Identify(context.Background(), session.Token)
	require.NoError(t, err)
	require.NotNil(t, identified)
	assert.Equal(t, user.Username, identified.Username)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	user := seedUser(t, "admin", "Password123!", models.RoleAdmin)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "ghost", password: "Password123!"},
		{name: "wrong password", username: "admin", password: "wrong"},
		{name: "empty username", username: "", password: "Password123!"},
		{name: "empty password", username: "admin", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(newMockUserRepository(user), newMockSessionRepository(), time.Hour, zap.NewNop())

			_, err := svc.Login(context.Background(), &models.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			// Same error value and message for every failure mode
			assert.ErrorIs(t, err, models.ErrInvalidCredentials)
			assert.EqualError(t, err, models.ErrInvalidCredentials.Error())
		})
	}
}

func TestAuthService_LogoutInvalidatesSession(t *testing.T) {
	user := seedUser(t, "admin", "Password123!", models.RoleAdmin)
	svc := NewAuthService(newMockUserRepository(user), newMockSessionRepository(), time.Hour, zap.NewNop())

	session, err := svc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "Password123!"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), session.Token))

	identified, err := svc.Identify(context.Background(), session.Token)
	require.NoError(t, err)
	assert.Nil(t, identified)
}

func TestAuthService_IdentifyExpiredSession(t *testing.T) {
	user := seedUser(t, "admin", "Password123!", models.RoleAdmin)
	sessionRepo := newMockSessionRepository()
	sessionRepo.sessions["stale"] = &models.Session{
		Token:     "stale",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := NewAuthService(newMockUserRepository(user), sessionRepo, time.Hour, zap.NewNop())

	identified, err := svc.Identify(context.Background(), "stale")

	require.NoError(t, err)
	assert.Nil(t, identified)
	assert.Contains(t, sessionRepo.deleted, "stale", "expired session should be removed on sight")
}

func TestAuthService_IdentifyDeletedUser(t *testing.T) {
	sessionRepo := newMockSessionRepository()
	sessionRepo.sessions["orphan"] = &models.Session{
		Token:     "orphan",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	svc := NewAuthService(newMockUserRepository(), sessionRepo, time.Hour, zap.NewNop())

	identified, err := svc.Identify(context.Background(), "orphan")

	require.NoError(t, err)
	assert.Nil(t, identified)
}

func TestAuthService_ResetPasswordDoesNotRevealUsernames(t *testing.T) {
	user := seedUser(t, "admin", "OldPassword1!", models.RoleAdmin)
	userRepo := newMockUserRepository(user)
	svc := NewAuthService(userRepo, newMockSessionRepository(), time.Hour, zap.NewNop())

	// Known username: hash is replaced
	err := svc.ResetPassword(context.Background(), &models.PasswordResetRequest{
		Username:    "admin",
		NewPassword: "NewPassword1!",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, userRepo.updatedUserID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(userRepo.updatedHash), []byte("NewPassword1!")))

	// Unknown username: same nil result, nothing updated
	userRepo.updatedUserID = 0
	err = svc.ResetPassword(context.Background(), &models.PasswordResetRequest{
		Username:    "ghost",
		NewPassword: "NewPassword1!",
	})
	require.NoError(t, err)
	assert.Zero(t, userRepo.updatedUserID)
}

func TestAuthService_ResetPasswordRequiresFields(t *testing.T) {
	svc := NewAuthService(newMockUserRepository(), newMockSessionRepository(), time.Hour, zap.NewNop())

	err := svc.ResetPassword(context.Background(), &models.PasswordResetRequest{Username: "admin"})

	assert.ErrorIs(t, err, models.ErrMissingFields)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("seeds admin when absent", func(t *testing.T) {
		userRepo := newMockUserRepository()
		svc := NewAuthService(userRepo, newMockSessionRepository(), time.Hour, zap.NewNop())

		err := svc.EnsureAdmin(context.Background(), "BootstrapPass1!")

		require.NoError(t, err)
		require.NotNil(t, userRepo.createdUser)
		assert.Equal(t, "admin", userRepo.createdUser.Username)
		assert.Equal(t, models.RoleAdmin, userRepo.createdUser.Role)
		assert.NotEqual(t, "BootstrapPass1!", userRepo.createdUser.PasswordHash)
	})

	t.Run("does nothing when admin exists", func(t *testing.T) {
		user := seedUser(t, "admin", "Password123!", models.RoleAdmin)
		userRepo := newMockUserRepository(user)
		svc := NewAuthService(userRepo, newMockSessionRepository(), time.Hour, zap.NewNop())

		err := svc.EnsureAdmin(context.Background(), "BootstrapPass1!")

		require.NoError(t, err)
		assert.Nil(t, userRepo.createdUser)
	})

	t.Run("propagates lookup failure", func(t *testing.T) {
		userRepo := newMockUserRepository()
		userRepo.existsErr = errors.New("database error")
		svc := NewAuthService(userRepo, newMockSessionRepository(), time.Hour, zap.NewNop())

		err := svc.EnsureAdmin(context.Background(), "BootstrapPass1!")

		assert.Error(t, err)
	})
}
