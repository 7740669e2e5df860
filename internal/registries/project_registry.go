package registries

import (
	"sync"

	"github.com/regionboard/backend/internal/models"
)

// ProjectRegistry is an in-memory project store with insertion-order listing.
type ProjectRegistry struct {
	mu       sync.Mutex
	projects []*models.Project
	nextID   int
}

// NewProjectRegistry creates a project registry preloaded with the given
// projects. The id counter starts past the highest seeded id.
func NewProjectRegistry(seed ...models.Project) *ProjectRegistry {
	r := &ProjectRegistry{nextID: 1}
	for _, p := range seed {
		project := p
		if project.ID >= r.nextID {
			r.nextID = project.ID + 1
		}
		r.projects = append(r.projects, &project)
	}
	return r
}

// List returns all projects in insertion order.
func (r *ProjectRegistry) List() []models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out
}

// Get returns the project with the given id, or ErrNotFound.
func (r *ProjectRegistry) Get(id int) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID == id {
			return *p, nil
		}
	}
	return models.Project{}, models.ErrNotFound
}

// Create assigns the next id to the project and appends it.
func (r *ProjectRegistry) Create(project models.Project) models.Project {
	r.mu.Lock()
	defer r.mu.Unlock()

	project.ID = r.nextID
	r.nextID++
	r.projects = append(r.projects, &project)
	return project
}

// Update applies the non-nil patch fields to the project with the given id.
func (r *ProjectRegistry) Update(id int, patch models.ProjectPatch) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.ID != id {
			continue
		}
		if patch.Nom != nil {
			p.Nom = *patch.Nom
		}
		if patch.DateDebut != nil {
			p.DateDebut = *patch.DateDebut
		}
		if patch.Statut != nil {
			p.Statut = *patch.Statut
		}
		if patch.DateFin != nil {
			p.DateFin = patch.DateFin
		} else if patch.ClearDateFin {
			p.DateFin = nil
		}
		if patch.Budget != nil {
			p.Budget = *patch.Budget
		}
		if patch.Progression != nil {
			p.Progression = *patch.Progression
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		return *p, nil
	}
	return models.Project{}, models.ErrNotFound
}

// Delete removes the project with the given id. It reports whether an
// entry was removed and is idempotent on repeated calls.
func (r *ProjectRegistry) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.projects {
		if p.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return true
		}
	}
	return false
}
