package services

import (
	"testing"

	"github.com/regionboard/backend/internal/models"
	"github.com/regionboard/backend/internal/registries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	t.Run("defaults the status", func(t *testing.T) {
		svc := NewProjectService(registries.NewProjectRegistry())

		project, err := svc.Create(&models.ProjectInput{
			Nom:       "Extension du réseau d'eau",
			DateDebut: "2025-02-01",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, project.ID)
		assert.Equal(t, models.ProjectStatusInProgress, project.Statut)
		assert.Nil(t, project.DateFin)
	})

	t.Run("parses an optional end date", func(t *testing.T) {
		svc := NewProjectService(registries.NewProjectRegistry())

		project, err := svc.Create(&models.ProjectInput{
			Nom:       "Extension du réseau d'eau",
			DateDebut: "2025-02-01",
			DateFin:   "2025-09-30",
		})

		require.NoError(t, err)
		require.NotNil(t, project.DateFin)
		assert.Equal(t, "2025-09-30", project.DateFin.Format("2006-01-02"))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		registry := registries.NewProjectRegistry()
		svc := NewProjectService(registry)

		_, err := svc.Create(&models.ProjectInput{Nom: "Sans date"})
		assert.ErrorIs(t, err, models.ErrMissingFields)

		_, err = svc.Create(&models.ProjectInput{DateDebut: "2025-02-01"})
		assert.ErrorIs(t, err, models.ErrMissingFields)

		assert.Empty(t, registry.List())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		svc := NewProjectService(registries.NewProjectRegistry())

		_, err := svc.Create(&models.ProjectInput{Nom: "x", DateDebut: "01/02/2025"})
		assert.ErrorIs(t, err, models.ErrBadDate)

		_, err = svc.Create(&models.ProjectInput{Nom: "x", DateDebut: "2025-02-01", DateFin: "septembre"})
		assert.ErrorIs(t, err, models.ErrBadDate)
	})
}

func TestProjectService_Update(t *testing.T) {
	svc := NewProjectService(registries.NewProjectRegistry())
	created, err := svc.Create(&models.ProjectInput{
		Nom:       "Extension du réseau d'eau",
		DateDebut: "2025-02-01",
		DateFin:   "2025-09-30",
	})
	require.NoError(t, err)

	t.Run("overwrites all fields", func(t *testing.T) {
		updated, err := svc.Update(created.ID, &models.ProjectInput{
			Nom:         "Extension du réseau d'eau - phase 2",
			DateDebut:   "2025-03-01",
			Statut:      models.ProjectStatusCompleted,
			Progression: 100,
		})

		require.NoError(t, err)
		assert.Equal(t, "Extension du réseau d'eau - phase 2", updated.Nom)
		assert.Equal(t, models.ProjectStatusCompleted, updated.Statut)
		assert.Equal(t, 100, updated.Progression)
	})

	t.Run("an empty end date clears the stored one", func(t *testing.T) {
		updated, err := svc.Update(created.ID, &models.ProjectInput{
			Nom:       "Extension du réseau d'eau",
			DateDebut: "2025-02-01",
		})

		require.NoError(t, err)
		assert.Nil(t, updated.DateFin)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(99, &models.ProjectInput{Nom: "x", DateDebut: "2025-02-01"})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestProjectService_Delete(t *testing.T) {
	svc := NewProjectService(registries.NewProjectRegistry())
	created, err := svc.Create(&models.ProjectInput{Nom: "x", DateDebut: "2025-02-01"})
	require.NoError(t, err)

	assert.True(t, svc.Delete(created.ID))
	assert.False(t, svc.Delete(created.ID))
}
