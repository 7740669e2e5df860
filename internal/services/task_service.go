package services

import (
	"github.com/regionboard/backend/internal/models"
)

// TaskStore is the interface that wraps the in-memory task registry
type TaskStore interface {
	// Method List returns all tasks in insertion order.
	List() []models.Task
	// Method Get returns the task with the given id, or models.ErrNotFound.
	Get(id int) (models.Task, error)
	// Method Create assigns an id to the task and stores it.
	Create(task models.Task) models.Task
	// Method Update applies the non-nil patch fields to the stored task.
	Update(id int, patch models.TaskPatch) (models.Task, error)
	// Method Delete removes the task and reports whether an entry existed.
	Delete(id int) bool
}

// taskService validates task input and applies defaults before touching the
// registry. The form and JSON entry points both go through this service, so
// they share one validation routine.
type taskService struct {
	store TaskStore
}

// NewTaskService creates a new task service
func NewTaskService(store TaskStore) *taskService {
	return &taskService{store: store}
}

// List returns all tasks in insertion order.
func (s *taskService) List() []models.Task {
	return s.store.List()
}

// Get returns one task by id.
func (s *taskService) Get(id int) (models.Task, error) {
	return s.store.Get(id)
}

// Create validates the input, applies defaults and stores a new task.
func (s *taskService) Create(in *models.TaskInput) (models.Task, error) {
	if err := in.Validate(); err != nil {
		return models.Task{}, err
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Task{}, err
	}

	statut := in.Statut
	if statut == "" {
		statut = models.TaskStatusInProgress
	}
	priorite := in.Priorite
	if priorite == "" {
		priorite = models.TaskPriorityMedium
	}

	task := models.Task{
		Titre:       in.Titre,
		Date:        date,
		Statut:      statut,
		Priorite:    priorite,
		Description: in.Description,
		Projet:      in.Projet,
		Assignee:    in.Assignee,
	}
	return s.store.Create(task), nil
}

// Update validates the input and overwrites every field of the task, the
// way the edit form submits all values.
func (s *taskService) Update(id int, in *models.TaskInput) (models.Task, error) {
	if err := in.Validate(); err != nil {
		return models.Task{}, err
	}

	date, err := models.ParseDate(in.Date)
	if err != nil {
		return models.Task{}, err
	}

	patch := models.TaskPatch{
		Titre:       &in.Titre,
		Date:        &date,
		Statut:      &in.Statut,
		Priorite:    &in.Priorite,
		Description: &in.Description,
		Projet:      &in.Projet,
		Assignee:    &in.Assignee,
	}
	return s.store.Update(id, patch)
}

// Complete marks a task as done.
func (s *taskService) Complete(id int) (models.Task, error) {
	statut := models.TaskStatusCompleted
	return s.store.Update(id, models.TaskPatch{Statut: &statut})
}

// Delete removes a task and reports whether it existed.
func (s *taskService) Delete(id int) bool {
	return s.store.Delete(id)
}
