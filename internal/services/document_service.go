package services

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/regionboard/backend/internal/models"
)

// DocumentStore is the interface that wraps the in-memory document registry
type DocumentStore interface {
	// Method List returns all document records in insertion order.
	List() []models.Document
	// Method Get returns the document with the given id, or models.ErrNotFound.
	Get(id int) (models.Document, error)
	// Method Create assigns an id to the document record and stores it.
	Create(doc models.Document) models.Document
	// Method Delete removes the record and reports whether an entry existed.
	Delete(id int) bool
}

// FileStorage is the interface that wraps filesystem access for document bytes
type FileStorage interface {
	// Method Create opens a new file for writing under the storage root.
	Create(filename string) (io.WriteCloser, error)
	// Method Open opens a stored file for reading.
	Open(filename string) (io.ReadCloser, error)
	// Method Delete removes a stored file.
	Delete(filename string) error
}

// documentService keeps the metadata registry and the file store in step:
// a record only exists when its bytes were written, and deleting a record
// removes the bytes.
type documentService struct {
	store DocumentStore
	files FileStorage
}

// NewDocumentService creates a new document service
func NewDocumentService(store DocumentStore, files FileStorage) *documentService {
	return &documentService{store: store, files: files}
}

// List returns all document records in insertion order.
func (s *documentService) List() []models.Document {
	return s.store.List()
}

// Upload writes the file bytes to storage and records the metadata. The
// stored filename is the base name of the upload; a missing title falls
// back to it.
func (s *documentService) Upload(titre, filename string, src io.Reader) (models.Document, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." {
		return models.Document{}, fmt.Errorf("%w: fichier", models.ErrMissingFields)
	}
	if titre = strings.TrimSpace(titre); titre == "" {
		titre = filename
	}

	dst, err := s.files.Create(filename)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to create document file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return models.Document{}, fmt.Errorf("failed to write document file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return models.Document{}, err
	}

	return s.store.Create(models.Document{Titre: titre, Fichier: filename}), nil
}

// Open returns the record and a reader over the stored bytes. The caller
// closes the reader.
func (s *documentService) Open(id int) (models.Document, io.ReadCloser, error) {
	doc, err := s.store.Get(id)
	if err != nil {
		return models.Document{}, nil, err
	}

	file, err := s.files.Open(doc.Fichier)
	if err != nil {
		return models.Document{}, nil, fmt.Errorf("failed to open document file: %w", err)
	}
	return doc, file, nil
}

// Delete removes the record and its file. A missing file is tolerated; the
// record going away is what matters.
func (s *documentService) Delete(id int) error {
	doc, err := s.store.Get(id)
	if err != nil {
		return err
	}

	if !s.store.Delete(id) {
		return models.ErrNotFound
	}
	_ = s.files.Delete(doc.Fichier)
	return nil
}
