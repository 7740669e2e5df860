package models

import "fmt"

// Task statuses on the wire.
const (
	TaskStatusPlanned    = "Planifié"
	TaskStatusInProgress = "En cours"
	TaskStatusCompleted  = "Terminé"
	TaskStatusLate       = "En retard"
)

// Task priorities on the wire.
const (
	TaskPriorityLow    = "Basse"
	TaskPriorityMedium = "Moyenne"
	TaskPriorityHigh   = "Haute"
)

// Task represents a tracked work item. Projet and Assignee are free text,
// not references to other entities.
type Task struct {
	ID          int    `json:"id"`
	Titre       string `json:"titre"`
	Date        Date   `json:"date"`
	Statut      string `json:"statut"`
	Priorite    string `json:"priorite,omitempty"`
	Description string `json:"description,omitempty"`
	Projet      string `json:"projet,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// TaskInput carries raw create/update values from either the form or the
// JSON entry point. Dates stay strings here; services parse them so both
// paths share the same validation.
type TaskInput struct {
	Titre       string `json:"titre"`
	Date        string `json:"date"`
	Statut      string `json:"statut"`
	Priorite    string `json:"priorite"`
	Description string `json:"description"`
	Projet      string `json:"projet"`
	Assignee    string `json:"assignee"`
}

// Validate checks required fields for task creation.
func (in *TaskInput) Validate() error {
	if in.Titre == "" {
		return fmt.Errorf("%w: titre", ErrMissingFields)
	}
	if in.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingFields)
	}
	return nil
}

// TaskPatch applies a partial update; nil fields are left untouched.
type TaskPatch struct {
	Titre       *string
	Date        *Date
	Statut      *string
	Priorite    *string
	Description *string
	Projet      *string
	Assignee    *string
}
