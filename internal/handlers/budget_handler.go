package handlers

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// BudgetsService is the interface that wraps methods for budget business logic.
type BudgetsService interface {
	// Method List returns all budgets in insertion order.
	List() []models.Budget
	// Method Get returns one budget by id, or models.ErrNotFound.
	Get(id int) (models.Budget, error)
	// Method Create validates the input and stores a new budget. Nothing is
	// stored when validation fails.
	Create(in *models.BudgetInput) (models.Budget, error)
	// Method Update applies a partial update; absent keys leave the stored
	// values untouched.
	Update(id int, in *models.BudgetUpdate) (models.Budget, error)
	// Method Delete removes a budget and reports whether it existed.
	Delete(id int) bool
}

// BudgetHandler handles HTTP requests for budgets
type BudgetHandler struct {
	BaseHandler
	service  BudgetsService
	resolver middlewares.IdentityResolver
	csrf     *auth.CSRFGenerator
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(svc BudgetsService, resolver middlewares.IdentityResolver, csrf *auth.CSRFGenerator, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		resolver:    resolver,
		csrf:        csrf,
	}
}

// RegisterRoutes registers all budget handler routes
func (h *BudgetHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(h.resolver))
		r.Route("/api/budgets", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Create)
			r.Get("/{id}", h.Get)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Delete)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSessionPage(h.resolver))
		r.Get("/budgets", h.Page)
		r.Get("/budgets/export", h.Export)
		r.With(middlewares.CSRFMiddleware(h.csrf)).Post("/add_budget", h.AddForm)
	})
}

// List handles GET /api/budgets
// @Summary List budgets
// @Description List all budgets in insertion order
// @Tags budgets
// @Produce json
// @Success 200 {array} model.Budget
// @Failure 401 {object} map[string]string
// @Router /api/budgets [get]
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List())
}

// Get handles GET /api/budgets/{id}
// @Summary Get a budget
// @Description Get one budget by id
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} model.Budget
// @Failure 404 {object} map[string]string
// @Router /api/budgets/{id} [get]
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	budget, err := h.service.Get(id)
	if err != nil {
		h.respondBudgetError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, budget)
}

// Create handles POST /api/budgets
// @Summary Create a budget
// @Description Create a budget; nom, montant, statut and date are required
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body model.BudgetInput true "Budget"
// @Success 201 {object} model.Budget
// @Failure 400 {object} map[string]string
// @Router /api/budgets [post]
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.BudgetInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := h.service.Create(&in)
	if err != nil {
		h.respondBudgetError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, budget)
}

// Update handles PUT /api/budgets/{id}
// @Summary Update a budget
// @Description Apply a partial update; absent keys leave stored values untouched
// @Tags budgets
// @Accept json
// @Produce json
// @Param id path int true "Budget ID"
// @Param budget body model.BudgetUpdate true "Fields to update"
// @Success 200 {object} model.Budget
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/budgets/{id} [put]
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	var in models.BudgetUpdate
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	budget, err := h.service.Update(id, &in)
	if err != nil {
		h.respondBudgetError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, budget)
}

// Delete handles DELETE /api/budgets/{id}
// @Summary Delete a budget
// @Description Delete one budget by id
// @Tags budgets
// @Produce json
// @Param id path int true "Budget ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/budgets/{id} [delete]
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if !h.service.Delete(id) {
		h.respondError(w, http.StatusNotFound, "budget not found")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "budget deleted"})
}

// Page handles GET /budgets and returns the budget page data.
func (h *BudgetHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"budgets": h.service.List()})
}

// AddForm handles POST /add_budget. The form goes through the same
// validation as the JSON entry point.
func (h *BudgetHandler) AddForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	in := models.BudgetInput{
		Nom:           r.PostFormValue("nom"),
		Montant:       r.PostFormValue("montant"),
		Statut:        r.PostFormValue("statut"),
		Date:          r.PostFormValue("date"),
		ProjetAssocie: r.PostFormValue("projet_associe"),
		Description:   r.PostFormValue("description"),
	}
	if _, err := h.service.Create(&in); err != nil {
		h.respondBudgetError(w, err)
		return
	}
	http.Redirect(w, r, "/budgets", http.StatusSeeOther)
}

// Export handles GET /budgets/export and streams the budget list as CSV.
func (h *BudgetHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="budgets.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "nom", "montant", "statut", "date", "projet_associe", "description"})
	for _, b := range h.service.List() {
		cw.Write([]string{
			strconv.Itoa(b.ID),
			b.Nom,
			b.Montant,
			b.Statut,
			b.Date.Format("2006-01-02"),
			b.ProjetAssocie,
			b.Description,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("failed to write budget export", zap.Error(err))
	}
}

func (h *BudgetHandler) respondBudgetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrMissingFields):
		h.respondError(w, http.StatusBadRequest, "missing fields")
	case errors.Is(err, models.ErrBadDate):
		h.respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, models.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "budget not found")
	default:
		h.logger.Error("budget operation failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "budget operation failed")
	}
}
