package models

import "fmt"

// Project statuses on the wire.
const (
	ProjectStatusPlanned    = "Planifié"
	ProjectStatusInProgress = "En cours"
	ProjectStatusCompleted  = "Terminé"
)

// Project represents a regional project. Budget is the display amount as
// entered, a free-text string rather than a numeric value.
type Project struct {
	ID          int    `json:"id"`
	Nom         string `json:"nom"`
	DateDebut   Date   `json:"date_debut"`
	Statut      string `json:"statut"`
	DateFin     *Date  `json:"date_fin"`
	Budget      string `json:"budget,omitempty"`
	Progression int    `json:"progression"`
	Description string `json:"description,omitempty"`
}

// ProjectInput carries raw create/update values shared by the form and
// JSON entry points.
type ProjectInput struct {
	Nom         string `json:"nom"`
	DateDebut   string `json:"date_debut"`
	Statut      string `json:"statut"`
	DateFin     string `json:"date_fin"`
	Budget      string `json:"budget"`
	Progression int    `json:"progression"`
	Description string `json:"description"`
}

// Validate checks required fields for project creation.
func (in *ProjectInput) Validate() error {
	if in.Nom == "" {
		return fmt.Errorf("%w: nom", ErrMissingFields)
	}
	if in.DateDebut == "" {
		return fmt.Errorf("%w: date_debut", ErrMissingFields)
	}
	return nil
}

// ProjectPatch applies a partial update; nil fields are left untouched.
// ClearDateFin removes the end date without requiring a replacement value.
type ProjectPatch struct {
	Nom          *string
	DateDebut    *Date
	Statut       *string
	DateFin      *Date
	ClearDateFin bool
	Budget       *string
	Progression  *int
	Description  *string
}
