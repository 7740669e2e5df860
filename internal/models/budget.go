package models

import "fmt"

// Budget statuses on the wire.
const (
	BudgetStatusPlanned    = "Planifié"
	BudgetStatusInProgress = "En cours"
	BudgetStatusApproved   = "Approuvé"
)

// Budget represents an allocated budget line. Montant is the display
// amount as entered, a free-text string rather than a numeric value.
type Budget struct {
	ID            int    `json:"id"`
	Nom           string `json:"nom"`
	Montant       string `json:"montant"`
	Statut        string `json:"statut"`
	Date          Date   `json:"date"`
	ProjetAssocie string `json:"projet_associe,omitempty"`
	Description   string `json:"description,omitempty"`
}

// BudgetInput carries raw create values shared by the form and JSON entry
// points. The JSON create path historically validated required fields while
// the form path did not; both now go through Validate.
type BudgetInput struct {
	Nom           string `json:"nom"`
	Montant       string `json:"montant"`
	Statut        string `json:"statut"`
	Date          string `json:"date"`
	ProjetAssocie string `json:"projet_associe"`
	Description   string `json:"description"`
}

// Validate checks required fields for budget creation.
func (in *BudgetInput) Validate() error {
	for field, value := range map[string]string{
		"nom":     in.Nom,
		"montant": in.Montant,
		"statut":  in.Statut,
		"date":    in.Date,
	} {
		if value == "" {
			return fmt.Errorf("%w: %s", ErrMissingFields, field)
		}
	}
	return nil
}

// BudgetUpdate carries a partial JSON update; absent keys leave the stored
// values untouched.
type BudgetUpdate struct {
	Nom           *string `json:"nom"`
	Montant       *string `json:"montant"`
	Statut        *string `json:"statut"`
	Date          *string `json:"date"`
	ProjetAssocie *string `json:"projet_associe"`
	Description   *string `json:"description"`
}

// BudgetPatch applies a partial update at the registry level.
type BudgetPatch struct {
	Nom           *string
	Montant       *string
	Statut        *string
	Date          *Date
	ProjetAssocie *string
	Description   *string
}
