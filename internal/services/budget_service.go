package services

import (
	"github.com/regionboard/backend/internal/models"
)

// BudgetStore is the interface that wraps the in-memory budget registry
type BudgetStore interface {
	// Method List returns all budgets in insertion order.
	List() []models.Budget
	// Method Get returns the budget with the given id, or models.ErrNotFound.
	Get(id int) (models.Budget, error)
	// Method Create assigns an id to the budget and stores it.
	Create(budget models.Budget) models.Budget
	// Method Update applies the non-nil patch fields to the stored budget.
	Update(id int, patch models.BudgetPatch) (models.Budget, error)
	// Method Delete removes the budget and reports whether an entry existed.
	Delete(id int) bool
}

// budgetService validates budget input before touching the registry. The
// JSON API and the budgets page share this routine, so the required-field
// check applies to both entry points.
type budgetService struct {
	store BudgetStore
}

// NewBudgetService creates a new budget service
func NewBudgetService(store BudgetStore) *budgetService {
	return &budgetService{store: store}
}

// List returns all budgets in insertion order.
func (s *budgetService) List() []models.Budget {
	return s.store.List()
}

// Get returns one budget by id.
func (s *budgetService) Get(id int) (models.Budget, error) {
	return s.store.Get(id)
}

// Create validates the input and stores a new budget. Nothing is stored
// when validation fails.
func (s *budgetService) Create(in *models.BudgetInput) (models.Budget, error) {
	if err := in.Validate(); err != nil {
		return models.Budget{}, err
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Budget{}, err
	}

	budget := models.Budget{
		Nom:           in.Nom,
		Montant:       in.Montant,
		Statut:        in.Statut,
		Date:          date,
		ProjetAssocie: in.ProjetAssocie,
		Description:   in.Description,
	}
	return s.store.Create(budget), nil
}

// Update applies a partial JSON update; absent keys leave the stored
// values untouched.
func (s *budgetService) Update(id int, in *models.BudgetUpdate) (models.Budget, error) {
	patch := models.BudgetPatch{
		Nom:           in.Nom,
		Montant:       in.Montant,
		Statut:        in.Statut,
		ProjetAssocie: in.ProjetAssocie,
		Description:   in.Description,
	}
	if in.Date != nil {
		parsed, err := models.ParseDate(*in.Date)
		if err != nil {
			return models.Budget{}, err
		}
		patch.Date = &parsed
	}

	return s.store.Update(id, patch)
}

// Delete removes a budget and reports whether it existed.
func (s *budgetService) Delete(id int) bool {
	return s.store.Delete(id)
}
