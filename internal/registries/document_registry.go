package registries

import (
	"sync"

	"github.com/regionboard/backend/internal/models"
)

// DocumentRegistry is an in-memory document metadata store. File bytes are
// kept by the storage adapter; this tracks titles and filenames only.
type DocumentRegistry struct {
	mu        sync.Mutex
	documents []*models.Document
	nextID    int
}

// NewDocumentRegistry creates a document registry preloaded with the given
// documents. The id counter starts past the highest seeded id.
func NewDocumentRegistry(seed ...models.Document) *DocumentRegistry {
	r := &DocumentRegistry{nextID: 1}
	for _, d := range seed {
		doc := d
		if doc.ID >= r.nextID {
			r.nextID = doc.ID + 1
		}
		r.documents = append(r.documents, &doc)
	}
	return r
}

// List returns all documents in insertion order.
func (r *DocumentRegistry) List() []models.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Document, 0, len(r.documents))
	for _, d := range r.documents {
		out = append(out, *d)
	}
	return out
}

// Get returns the document with the given id, or ErrNotFound.
func (r *DocumentRegistry) Get(id int) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.documents {
		if d.ID == id {
			return *d, nil
		}
	}
	return models.Document{}, models.ErrNotFound
}

// Create assigns the next id to the document and appends it.
func (r *DocumentRegistry) Create(doc models.Document) models.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc.ID = r.nextID
	r.nextID++
	r.documents = append(r.documents, &doc)
	return doc
}

// Delete removes the document with the given id. It reports whether an
// entry was removed and is idempotent on repeated calls.
func (r *DocumentRegistry) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, d := range r.documents {
		if d.ID == id {
			r.documents = append(r.documents[:i], r.documents[i+1:]...)
			return true
		}
	}
	return false
}
