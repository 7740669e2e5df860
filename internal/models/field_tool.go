package models

// FieldTool is an entry on the field tools page.
type FieldTool struct {
	ID          int    `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description"`
}
