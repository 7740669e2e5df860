// Package registries holds the in-memory entity stores. Each registry owns
// its slice and id counter behind a mutex, so concurrent creates can never
// hand out the same id. Registries are injected, never package-level state.
package registries

import (
	"sync"

	"github.com/regionboard/backend/internal/models"
)

// TaskRegistry is an in-memory task store with insertion-order listing.
type TaskRegistry struct {
	mu     sync.Mutex
	tasks  []*models.Task
	nextID int
}

// NewTaskRegistry creates a task registry preloaded with the given tasks.
// The id counter starts past the highest seeded id and never rewinds, so
// deleting the highest entry does not free its id for reuse.
func NewTaskRegistry(seed ...models.Task) *TaskRegistry {
	r := &TaskRegistry{nextID: 1}
	for _, t := range seed {
		task := t
		if task.ID >= r.nextID {
			r.nextID = task.ID + 1
		}
		r.tasks = append(r.tasks, &task)
	}
	return r
}

// List returns all tasks in insertion order.
func (r *TaskRegistry) List() []models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out
}

// Get returns the task with the given id, or ErrNotFound.
func (r *TaskRegistry) Get(id int) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return *t, nil
		}
	}
	return models.Task{}, models.ErrNotFound
}

// Create assigns the next id to the task and appends it.
func (r *TaskRegistry) Create(task models.Task) models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	r.tasks = append(r.tasks, &task)
	return task
}

// Update applies the non-nil patch fields to the task with the given id.
func (r *TaskRegistry) Update(id int, patch models.TaskPatch) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID != id {
			continue
		}
		if patch.Titre != nil {
			t.Titre = *patch.Titre
		}
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Statut != nil {
			t.Statut = *patch.Statut
		}
		if patch.Priorite != nil {
			t.Priorite = *patch.Priorite
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Projet != nil {
			t.Projet = *patch.Projet
		}
		if patch.Assignee != nil {
			t.Assignee = *patch.Assignee
		}
		return *t, nil
	}
	return models.Task{}, models.ErrNotFound
}

// Delete removes the task with the given id. It reports whether an entry
// was removed and is idempotent on repeated calls.
func (r *TaskRegistry) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}
