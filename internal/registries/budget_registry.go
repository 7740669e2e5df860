package registries

import (
	"sync"

	"github.com/regionboard/backend/internal/models"
)

// BudgetRegistry is an in-memory budget store with insertion-order listing.
type BudgetRegistry struct {
	mu      sync.Mutex
	budgets []*models.Budget
	nextID  int
}

// NewBudgetRegistry creates a budget registry preloaded with the given
// budgets. The id counter starts past the highest seeded id.
func NewBudgetRegistry(seed ...models.Budget) *BudgetRegistry {
	r := &BudgetRegistry{nextID: 1}
	for _, b := range seed {
		budget := b
		if budget.ID >= r.nextID {
			r.nextID = budget.ID + 1
		}
		r.budgets = append(r.budgets, &budget)
	}
	return r
}

// List returns all budgets in insertion order.
func (r *BudgetRegistry) List() []models.Budget {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Budget, 0, len(r.budgets))
	for _, b := range r.budgets {
		out = append(out, *b)
	}
	return out
}

// Get returns the budget with the given id, or ErrNotFound.
func (r *BudgetRegistry) Get(id int) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.budgets {
		if b.ID == id {
			return *b, nil
		}
	}
	return models.Budget{}, models.ErrNotFound
}

// Create assigns the next id to the budget and appends it.
func (r *BudgetRegistry) Create(budget models.Budget) models.Budget {
	r.mu.Lock()
	defer r.mu.Unlock()

	budget.ID = r.nextID
	r.nextID++
	r.budgets = append(r.budgets, &budget)
	return budget
}

// Update applies the non-nil patch fields to the budget with the given id.
func (r *BudgetRegistry) Update(id int, patch models.BudgetPatch) (models.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.budgets {
		if b.ID != id {
			continue
		}
		if patch.Nom != nil {
			b.Nom = *patch.Nom
		}
		if patch.Montant != nil {
			b.Montant = *patch.Montant
		}
		if patch.Statut != nil {
			b.Statut = *patch.Statut
		}
		if patch.Date != nil {
			b.Date = *patch.Date
		}
		if patch.ProjetAssocie != nil {
			b.ProjetAssocie = *patch.ProjetAssocie
		}
		if patch.Description != nil {
			b.Description = *patch.Description
		}
		return *b, nil
	}
	return models.Budget{}, models.ErrNotFound
}

// Delete removes the budget with the given id. It reports whether an entry
// was removed and is idempotent on repeated calls.
func (r *BudgetRegistry) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.budgets {
		if b.ID == id {
			r.budgets = append(r.budgets[:i], r.budgets[i+1:]...)
			return true
		}
	}
	return false
}
