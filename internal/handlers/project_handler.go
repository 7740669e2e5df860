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

// ProjectsService is the interface that wraps methods for project business logic.
type ProjectsService interface {
	// Method List returns all projects in insertion order.
	List() []models.Project
	// Method Get returns one project by id, or models.ErrNotFound.
	Get(id int) (models.Project, error)
	// Method Create validates the input, applies defaults and stores a new project.
	Create(in *models.ProjectInput) (models.Project, error)
	// Method Update validates the input and overwrites every field of the
	// project. An empty end date clears the stored one.
	Update(id int, in *models.ProjectInput) (models.Project, error)
	// Method Delete removes a project and reports whether it existed.
	Delete(id int) bool
}

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	BaseHandler
	service  ProjectsService
	resolver middlewares.IdentityResolver
	csrf     *auth.CSRFGenerator
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(svc ProjectsService, resolver middlewares.IdentityResolver, csrf *auth.CSRFGenerator, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		resolver:    resolver,
		csrf:        csrf,
	}
}

// RegisterRoutes registers all project handler routes
func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(h.resolver))
		r.Get("/api/projets", h.ListAPI)
		r.Get("/api/projets/{id}", h.GetAPI)
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSessionPage(h.resolver))
		r.Get("/projets", h.Page)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.CSRFMiddleware(h.csrf))
			r.Post("/add_project", h.Add)
			r.Post("/edit_project/{id}", h.Edit)
			r.Post("/delete_project/{id}", h.Delete)
		})
	})
}

// ListAPI handles GET /api/projets
// @Summary List projects
// @Description List all projects in insertion order
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Failure 401 {object} map[string]string
// @Router /api/projets [get]
func (h *ProjectHandler) ListAPI(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List())
}

// GetAPI handles GET /api/projets/{id}
// @Summary Get a project
// @Description Get one project by id
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} model.Project
// @Failure 404 {object} map[string]string
// @Router /api/projets/{id} [get]
func (h *ProjectHandler) GetAPI(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	project, err := h.service.Get(id)
	if err != nil {
		h.respondProjectError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, project)
}

// Page handles GET /projets and returns the project page data.
func (h *ProjectHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"projets": h.service.List()})
}

// Add handles POST /add_project
func (h *ProjectHandler) Add(w http.ResponseWriter, r *http.Request) {
	in, err := h.readProjectInput(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Create(in); err != nil {
		h.respondProjectError(w, err)
		return
	}
	h.finish(w, r, "/projets")
}

// Edit handles POST /edit_project/{id}
func (h *ProjectHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	in, err := h.readProjectInput(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.service.Update(id, in); err != nil {
		h.respondProjectError(w, err)
		return
	}
	h.finish(w, r, "/projets")
}

// Delete handles POST /delete_project/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	h.service.Delete(id)
	h.finish(w, r, "/projets")
}

// readProjectInput accepts the JSON body of API clients and the form body
// of the project pages.
func (h *ProjectHandler) readProjectInput(r *http.Request) (*models.ProjectInput, error) {
	if wantsJSON(r) {
		var in models.ProjectInput
		if err := decodeJSON(r, &in); err != nil {
			return nil, err
		}
		return &in, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	in := &models.ProjectInput{
		Nom:         r.PostFormValue("nom"),
		DateDebut:   r.PostFormValue("date_debut"),
		Statut:      r.PostFormValue("statut"),
		DateFin:     r.PostFormValue("date_fin"),
		Budget:      r.PostFormValue("budget"),
		Description: r.PostFormValue("description"),
	}
	if raw := r.PostFormValue("progression"); raw != "" {
		progression, err := parsePercent(raw)
		if err != nil {
			return nil, err
		}
		in.Progression = progression
	}
	return in, nil
}

func (h *ProjectHandler) respondProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissingFields):
		h.respondError(w, http.StatusBadRequest, "missing fields")
	case errors.Is(err, models.ErrBadDate):
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "project not found")
	default:
		h.logger.Error("project operation failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "project operation failed")
	}
}
