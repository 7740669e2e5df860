package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// TasksService is the interface that wraps methods for task business logic.
type TasksService interface {
	// Method List returns all tasks in insertion order.
	List() []models.Task
	// Method Get returns one task by id, or models.ErrNotFound.
	Get(id int) (models.Task, error)
	// Method Create validates the input, applies defaults and stores a new task.
	Create(in *models.TaskInput) (models.Task, error)
	// Method Update validates the input and overwrites every field of the task.
	Update(id int, in *models.TaskInput) (models.Task, error)
	// Method Complete marks a task as done.
	Complete(id int) (models.Task, error)
	// Method Delete removes a task and reports whether it existed.
	Delete(id int) bool
}

// TaskHandler handles HTTP requests for tasks
type TaskHandler struct {
	BaseHandler
	service  TasksService
	resolver middlewares.IdentityResolver
	csrf     *auth.CSRFGenerator
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(svc TasksService, resolver middlewares.IdentityResolver, csrf *auth.CSRFGenerator, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		resolver:    resolver,
		csrf:        csrf,
	}
}

// RegisterRoutes registers all task handler routes. The legacy form routes
// keep their historical paths; mutations go through the CSRF check.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.With(middlewares.RequireSession(h.resolver)).Get("/api/taches", h.ListAPI)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSessionPage(h.resolver))
		r.Get("/taches", h.Page)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.CSRFMiddleware(h.csrf))
			r.Post("/add_task", h.Add)
			r.Post("/edit_task/{id}", h.Edit)
			r.Post("/complete_task/{id}", h.Complete)
			r.Post("/delete_task/{id}", h.Delete)
		})
	})
}

// ListAPI handles GET /api/taches
// @Summary List tasks
// @Description List all tasks in insertion order
// @Tags tasks
// @Produce json
// @Success 200 {array} model.Task
// @Failure 401 {object} map[string]string
// @Router /api/taches [get]
func (h *TaskHandler) ListAPI(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List())
}

// Page handles GET /taches and returns the task page data.
func (h *TaskHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"taches": h.service.List()})
}

// Add handles POST /add_task
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	in, err := h.readTaskInput(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Create(in); err != nil {
		h.respondTaskError(w, err)
		return
	}
	h.finish(w, r, "/taches")
}

// Edit handles POST /edit_task/{id}
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	in, err := h.readTaskInput(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Update(id, in); err != nil {
		h.respondTaskError(w, err)
		return
	}
	h.finish(w, r, "/taches")
}

// Complete handles POST /complete_task/{id}
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if _, err := h.service.Complete(id); err != nil {
		h.respondTaskError(w, err)
		return
	}
	h.finish(w, r, "/taches")
}

// Delete handles POST /delete_task/{id}. Deleting an absent task still
// lands back on the listing; the outcome is the same either way.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	h.service.Delete(id)
	h.finish(w, r, "/taches")
}

// readTaskInput accepts the JSON body of API clients and the form body of
// the task pages.
func (h *TaskHandler) readTaskInput(r *http.Request) (*models.TaskInput, error) {
	if wantsJSON(r) {
		var in models.TaskInput
		if err := decodeJSON(r, &in); err != nil {
			return nil, err
		}
		return &in, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &models.TaskInput{
		Titre:       r.PostFormValue("titre"),
		Date:        r.PostFormValue("date"),
		Statut:      r.PostFormValue("statut"),
		Priorite:    r.PostFormValue("priorite"),
		Description: r.PostFormValue("description"),
		Projet:      r.PostFormValue("projet"),
		Assignee:    r.PostFormValue("assignee"),
	}, nil
}

// respondTaskError maps service errors onto HTTP statuses. Both entry
// points share it, so the form pages get the same validation as the API.
func (h *TaskHandler) respondTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissingFields):
		h.respondError(w, http.StatusBadRequest, "missing fields")
	case errors.Is(err, models.ErrBadDate):
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "task not found")
	default:
		h.logger.Error("task operation failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "task operation failed")
	}
}
