// Package storage is the filesystem passthrough for uploaded documents.
package storage

import (
	"io"
	"os"
	"path/filepath"
)

// localStorage stores document files under a base directory
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// generatePath builds the full path for a stored document
func (s *localStorage) generatePath(filename string) string {
	// Strip any directory components from the client-supplied name
	return filepath.Join(s.basePath, filepath.Base(filename))
}

// Create creates a new document file and returns a WriteCloser
func (s *localStorage) Create(filename string) (io.WriteCloser, error) {
	path := s.generatePath(filename)

	// Ensure the base directory exists
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Open opens a stored document for reading
func (s *localStorage) Open(filename string) (io.ReadCloser, error) {
	return os.Open(s.generatePath(filename))
}

// Delete removes a stored document
func (s *localStorage) Delete(filename string) error {
	return os.Remove(s.generatePath(filename))
}
