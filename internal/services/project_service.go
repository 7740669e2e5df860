package services

import (
	"github.com/regionboard/backend/internal/models"
)

// ProjectStore is the interface that wraps the in-memory project registry
type ProjectStore interface {
	// Method List returns all projects in insertion order.
	List() []models.Project
	// Method Get returns the project with the given id, or models.ErrNotFound.
	Get(id int) (models.Project, error)
	// Method Create assigns an id to the project and stores it.
	Create(project models.Project) models.Project
	// Method Update applies the non-nil patch fields to the stored project.
	Update(id int, patch models.ProjectPatch) (models.Project, error)
	// Method Delete removes the project and reports whether an entry existed.
	Delete(id int) bool
}

// projectService validates project input and applies defaults before
// touching the registry.
type projectService struct {
	store ProjectStore
}

// NewProjectService creates a new project service
func NewProjectService(store ProjectStore) *projectService {
	return &projectService{store: store}
}

// List returns all projects in insertion order.
func (s *projectService) List() []models.Project {
	return s.store.List()
}

// Get returns one project by id.
func (s *projectService) Get(id int) (models.Project, error) {
	return s.store.Get(id)
}

// Create validates the input, applies defaults and stores a new project.
func (s *projectService) Create(in *models.ProjectInput) (models.Project, error) {
	if err := in.Validate(); err != nil {
		return models.Project{}, err
	}

	dateDebut, err := models.ParseDate(in.DateDebut)
	if err != nil {
		return models.Project{}, err
	}

	var dateFin *models.Date
	if in.DateFin != "" {
		parsed, err := models.ParseDate(in.DateFin)
		if err != nil {
			return models.Project{}, err
		}
		dateFin = &parsed
	}

	statut := in.Statut
	if statut == "" {
		statut = models.ProjectStatusInProgress
	}

	project := models.Project{
		Nom:         in.Nom,
		DateDebut:   dateDebut,
		Statut:      statut,
		DateFin:     dateFin,
		Budget:      in.Budget,
		Progression: in.Progression,
		Description: in.Description,
	}
	return s.store.Create(project), nil
}

// Update validates the input and overwrites every field of the project,
// the way the edit form submits all values. An empty end date clears the
// stored one.
func (s *projectService) Update(id int, in *models.ProjectInput) (models.Project, error) {
	if err := in.Validate(); err != nil {
		return models.Project{}, err
	}

	dateDebut, err := models.ParseDate(in.DateDebut)
	if err != nil {
		return models.Project{}, err
	}

	patch := models.ProjectPatch{
		Nom:         &in.Nom,
		DateDebut:   &dateDebut,
		Statut:      &in.Statut,
		Budget:      &in.Budget,
		Progression: &in.Progression,
		Description: &in.Description,
	}
	if in.DateFin != "" {
		parsed, err := models.ParseDate(in.DateFin)
		if err != nil {
			return models.Project{}, err
		}
		patch.DateFin = &parsed
	} else {
		patch.ClearDateFin = true
	}

	return s.store.Update(id, patch)
}

// Delete removes a project and reports whether it existed.
func (s *projectService) Delete(id int) bool {
	return s.store.Delete(id)
}
