package services

import (
	"testing"

	"github.com/regionboard/backend/internal/models"
	"github.com/regionboard/backend/internal/registries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBudgetInput() *models.BudgetInput {
	return &models.BudgetInput{
		Nom:     "Budget voirie 2025",
		Montant: "150000",
		Statut:  models.BudgetStatusPlanned,
		Date:    "2025-01-15",
	}
}

func TestBudgetService_Create(t *testing.T) {
	t.Run("stores a valid budget", func(t *testing.T) {
		svc := NewBudgetService(registries.NewBudgetRegistry())

		budget, err := svc.Create(validBudgetInput())

		require.NoError(t, err)
		assert.Equal(t, 1, budget.ID)
		assert.Equal(t, "Budget voirie 2025", budget.Nom)
		assert.Equal(t, "150000", budget.Montant)
	})

	t.Run("rejects incomplete input without storing anything", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*models.BudgetInput)
		}{
			{name: "missing nom", mutate: func(in *models.BudgetInput) { in.Nom = "" }},
			{name: "missing montant", mutate: func(in *models.BudgetInput) { in.Montant = "" }},
			{name: "missing statut", mutate: func(in *models.BudgetInput) { in.Statut = "" }},
			{name: "missing date", mutate: func(in *models.BudgetInput) { in.Date = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				registry := registries.NewBudgetRegistry()
				svc := NewBudgetService(registry)
				in := validBudgetInput()
				tt.mutate(in)

				_, err := svc.Create(in)

				assert.ErrorIs(t, err, models.ErrMissingFields)
				assert.Empty(t, registry.List())
			})
		}
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		registry := registries.NewBudgetRegistry()
		svc := NewBudgetService(registry)
		in := validBudgetInput()
		in.Date = "15/01/2025"

		_, err := svc.Create(in)

		assert.ErrorIs(t, err, models.ErrBadDate)
		assert.Empty(t, registry.List())
	})
}

func TestBudgetService_Update(t *testing.T) {
	svc := NewBudgetService(registries.NewBudgetRegistry())
	created, err := svc.Create(validBudgetInput())
	require.NoError(t, err)

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		montant := "200000"
		updated, err := svc.Update(created.ID, &models.BudgetUpdate{Montant: &montant})

		require.NoError(t, err)
		assert.Equal(t, "200000", updated.Montant)
		assert.Equal(t, created.Nom, updated.Nom)
		assert.Equal(t, created.Statut, updated.Statut)
		assert.Equal(t, created.Date, updated.Date)
	})

	t.Run("parses a replacement date", func(t *testing.T) {
		date := "2025-06-01"
		updated, err := svc.Update(created.ID, &models.BudgetUpdate{Date: &date})

		require.NoError(t, err)
		assert.Equal(t, "2025-06-01", updated.Date.Format("2006-01-02"))
	})

	t.Run("rejects a malformed replacement date", func(t *testing.T) {
		date := "juin 2025"
		_, err := svc.Update(created.ID, &models.BudgetUpdate{Date: &date})

		assert.ErrorIs(t, err, models.ErrBadDate)
	})

	t.Run("unknown id", func(t *testing.T) {
		nom := "x"
		_, err := svc.Update(99, &models.BudgetUpdate{Nom: &nom})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestBudgetService_Delete(t *testing.T) {
	svc := NewBudgetService(registries.NewBudgetRegistry())
	created, err := svc.Create(validBudgetInput())
	require.NoError(t, err)

	assert.True(t, svc.Delete(created.ID))
	assert.False(t, svc.Delete(created.ID))
}
