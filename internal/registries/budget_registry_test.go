package registries

import (
	"testing"
	"time"

	"github.com/regionboard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBudget(nom string) models.Budget {
	return models.Budget{
		Nom:     nom,
		Montant: "100 000 Ariary",
		Statut:  models.BudgetStatusPlanned,
		Date:    models.NewDate(2025, time.March, 5),
	}
}

func TestBudgetRegistry_SeededListKeepsInsertionOrder(t *testing.T) {
	reg := NewBudgetRegistry(SeedBudgets()...)

	list := reg.List()
	require.Len(t, list, 3)
	assert.Equal(t, "Budget Développement Rural", list[0].Nom)
	assert.Equal(t, "Budget Santé Communautaire", list[1].Nom)
	assert.Equal(t, "Budget Infrastructure Routière", list[2].Nom)

	created := reg.Create(newBudget("Budget Éducation"))
	assert.Equal(t, 4, created.ID)
}

func TestBudgetRegistry_UpdatePatchesOnlyGivenFields(t *testing.T) {
	reg := NewBudgetRegistry()
	created := reg.Create(newBudget("Budget Santé"))

	montant := "900 000 Ariary"
	updated, err := reg.Update(created.ID, models.BudgetPatch{Montant: &montant})
	require.NoError(t, err)

	assert.Equal(t, montant, updated.Montant)
	assert.Equal(t, created.Nom, updated.Nom)
	assert.Equal(t, created.Statut, updated.Statut)
	assert.Equal(t, created.Date, updated.Date)
}

func TestBudgetRegistry_GetAndDelete(t *testing.T) {
	reg := NewBudgetRegistry()
	created := reg.Create(newBudget("Budget Eau"))

	got, err := reg.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	assert.True(t, reg.Delete(created.ID))
	assert.False(t, reg.Delete(created.ID))
	assert.Empty(t, reg.List())
}
