package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/models"
	"github.com/regionboard/backend/internal/registries"
	"github.com/regionboard/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTaskRouter(t *testing.T, registry *registries.TaskRegistry) (chi.Router, *stubResolver, *auth.CSRFGenerator) {
	t.Helper()
	resolver := testResolver()
	csrf := auth.NewCSRFGenerator("test-secret", time.Hour)
	handler := NewTaskHandler(services.NewTaskService(registry), resolver, csrf, zap.NewNop())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, resolver, csrf
}

func postForm(t *testing.T, router chi.Router, resolver *stubResolver, csrf *auth.CSRFGenerator, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	if csrf != nil {
		token, err := csrf.Generate()
		require.NoError(t, err)
		form.Set("csrf_token", token)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	authenticate(req, resolver)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTaskHandler_AddForm(t *testing.T) {
	registry := registries.NewTaskRegistry()
	router, resolver, csrf := newTaskRouter(t, registry)

	rec := postForm(t, router, resolver, csrf, "/add_task", url.Values{
		"titre": {"Inspection du chantier"},
		"date":  {"2025-03-10"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/taches", rec.Header().Get("Location"))

	tasks := registry.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Inspection du chantier", tasks[0].Titre)
	assert.Equal(t, models.TaskStatusInProgress, tasks[0].Statut)
}

func TestTaskHandler_AddFormRejectsBadInput(t *testing.T) {
	registry := registries.NewTaskRegistry()
	router, resolver, csrf := newTaskRouter(t, registry)

	t.Run("missing title", func(t *testing.T) {
		rec := postForm(t, router, resolver, csrf, "/add_task", url.Values{
			"date": {"2025-03-10"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := postForm(t, router, resolver, csrf, "/add_task", url.Values{
			"titre": {"Inspection"},
			"date":  {"10/03/2025"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Empty(t, registry.List())
}

func TestTaskHandler_AddFormRequiresCSRFToken(t *testing.T) {
	registry := registries.NewTaskRegistry()
	router, resolver, _ := newTaskRouter(t, registry)

	rec := postForm(t, router, resolver, nil, "/add_task", url.Values{
		"titre": {"Inspection"},
		"date":  {"2025-03-10"},
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, registry.List())
}

func TestTaskHandler_CompleteForm(t *testing.T) {
	registry := registries.NewTaskRegistry(registries.SeedTasks()...)
	router, resolver, csrf := newTaskRouter(t, registry)

	rec := postForm(t, router, resolver, csrf, "/complete_task/1", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	task, err := registry.Get(1)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, task.Statut)
}

func TestTaskHandler_ListAPI(t *testing.T) {
	registry := registries.NewTaskRegistry(registries.SeedTasks()...)
	router, resolver, _ := newTaskRouter(t, registry)

	req := httptest.NewRequest(http.MethodGet, "/api/taches", nil)
	authenticate(req, resolver)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 5)
	assert.Equal(t, "Préparer rapport annuel", tasks[0].Titre)
}

func TestTaskHandler_DeleteIsIdempotent(t *testing.T) {
	registry := registries.NewTaskRegistry(registries.SeedTasks()...)
	router, resolver, csrf := newTaskRouter(t, registry)

	rec := postForm(t, router, resolver, csrf, "/delete_task/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// Deleting again still lands on the listing page
	rec = postForm(t, router, resolver, csrf, "/delete_task/1", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	assert.Len(t, registry.List(), 4)
}
