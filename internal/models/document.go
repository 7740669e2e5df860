package models

// Document represents an uploaded file reference. The bytes live on the
// filesystem behind the storage adapter; only the metadata is kept here.
type Document struct {
	ID      int    `json:"id"`
	Titre   string `json:"titre"`
	Fichier string `json:"fichier"`
}

// Report is a canned report listed on the reports page.
type Report struct {
	ID      int    `json:"id"`
	Nom     string `json:"nom"`
	Fichier string `json:"fichier"`
}
