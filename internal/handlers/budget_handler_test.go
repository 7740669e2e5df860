package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"github.com/regionboard/backend/internal/registries"
	"github.com/regionboard/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubResolver resolves one fixed token to one fixed user.
type stubResolver struct {
	token string
	user  *models.User
}

func (s *stubResolver) Identify(ctx context.Context, token string) (*models.User, error) {
	if token == s.token {
		return s.user, nil
	}
	return nil, nil
}

func testResolver() *stubResolver {
	return &stubResolver{
		token: "test-session-token",
		user:  &models.User{ID: 1, Username: "admin", Role: models.RoleAdmin},
	}
}

func authenticate(r *http.Request, resolver *stubResolver) {
	r.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: resolver.token})
}

func newBudgetRouter(t *testing.T, registry *registries.BudgetRegistry) (chi.Router, *stubResolver) {
	t.Helper()
	resolver := testResolver()
	csrf := auth.NewCSRFGenerator("test-secret", time.Hour)
	handler := NewBudgetHandler(services.NewBudgetService(registry), resolver, csrf, zap.NewNop())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, resolver
}

func TestBudgetHandler_CreateRejectsIncompleteBody(t *testing.T) {
	registry := registries.NewBudgetRegistry()
	router, resolver := newBudgetRouter(t, registry)

	req := httptest.NewRequest(http.MethodPost, "/api/budgets", strings.NewReader(`{"nom":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, resolver)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing fields", body["error"])
	assert.Empty(t, registry.List(), "nothing stored after a rejected create")
}

func TestBudgetHandler_CRUD(t *testing.T) {
	registry := registries.NewBudgetRegistry()
	router, resolver := newBudgetRouter(t, registry)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		authenticate(req, resolver)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	// Create
	rec := do(http.MethodPost, "/api/budgets",
		`{"nom":"Budget voirie","montant":"150000","statut":"Planifié","date":"2025-01-15"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Budget
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	// Read back
	rec = do(http.MethodGet, "/api/budgets/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Partial update keeps the other fields
	rec = do(http.MethodPut, "/api/budgets/1", `{"montant":"200000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Budget
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "200000", updated.Montant)
	assert.Equal(t, "Budget voirie", updated.Nom)

	// Delete, then the id is gone
	rec = do(http.MethodDelete, "/api/budgets/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodGet, "/api/budgets/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "budget not found", body["error"])
}

func TestBudgetHandler_RequiresSession(t *testing.T) {
	router, _ := newBudgetRouter(t, registries.NewBudgetRegistry())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/budgets"},
		{http.MethodPost, "/api/budgets"},
		{http.MethodGet, "/api/budgets/1"},
		{http.MethodPut, "/api/budgets/1"},
		{http.MethodDelete, "/api/budgets/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestBudgetHandler_PageRedirectsAnonymous(t *testing.T) {
	router, _ := newBudgetRouter(t, registries.NewBudgetRegistry())

	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestBudgetHandler_Export(t *testing.T) {
	registry := registries.NewBudgetRegistry(registries.SeedBudgets()...)
	router, resolver := newBudgetRouter(t, registry)

	req := httptest.NewRequest(http.MethodGet, "/budgets/export", nil)
	authenticate(req, resolver)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 4, "header plus three seeded rows")
	assert.Contains(t, lines[0], "montant")
}
