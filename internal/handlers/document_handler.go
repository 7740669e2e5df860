package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/auth"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// maxUploadSize caps document uploads at 10 MiB.
const maxUploadSize = 10 << 20

// DocumentsService is the interface that wraps methods for document business logic.
type DocumentsService interface {
	// Method List returns all document records in insertion order.
	List() []models.Document
	// Method Upload stores the file bytes and records the metadata.
	Upload(titre, filename string, src io.Reader) (models.Document, error)
	// Method Open returns the record and a reader over the stored bytes.
	Open(id int) (models.Document, io.ReadCloser, error)
	// Method Delete removes the record and its file.
	Delete(id int) error
}

// DocumentHandler handles HTTP requests for documents
type DocumentHandler struct {
	BaseHandler
	service  DocumentsService
	resolver middlewares.IdentityResolver
	csrf     *auth.CSRFGenerator
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(svc DocumentsService, resolver middlewares.IdentityResolver, csrf *auth.CSRFGenerator, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		resolver:    resolver,
		csrf:        csrf,
	}
}

// RegisterRoutes registers all document handler routes
func (h *DocumentHandler) RegisterRoutes(r chi.Router) {
	r.With(middlewares.RequireSession(h.resolver)).Get("/api/documents", h.ListAPI)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSessionPage(h.resolver))
		r.Get("/documents", h.Page)
		r.Get("/documents/{id}/download", h.Download)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.CSRFMiddleware(h.csrf))
			r.Post("/upload_document", h.Upload)
			r.Post("/delete_document/{id}", h.Delete)
		})
	})
}

// ListAPI handles GET /api/documents
// @Summary List documents
// @Description List all uploaded document records
// @Tags documents
// @Produce json
// @Success 200 {array} model.Document
// @Failure 401 {object} map[string]string
// @Router /api/documents [get]
func (h *DocumentHandler) ListAPI(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.List())
}

// Page handles GET /documents and returns the document page data.
func (h *DocumentHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"documents": h.service.List()})
}

// Upload handles POST /upload_document, a multipart form with a "fichier"
// file part and an optional "titre" field.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("fichier")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing fields")
		return
	}
	defer file.Close()

	if _, err := h.service.Upload(r.FormValue("titre"), header.Filename, file); err != nil {
		if errors.Is(err, models.ErrMissingFields) {
			h.respondError(w, http.StatusBadRequest, "missing fields")
			return
		}
		h.logger.Error("document upload failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "document upload failed")
		return
	}
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}

// Download handles GET /documents/{id}/download and streams the stored file.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	doc, file, err := h.service.Open(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "document not found")
			return
		}
		h.logger.Error("document download failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "document download failed")
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Fichier+`"`)
	if _, err := io.Copy(w, file); err != nil {
		h.logger.Warn("document download interrupted", zap.Error(err))
	}
}

// Delete handles POST /delete_document/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid id parameter")
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "document not found")
			return
		}
		h.logger.Error("document delete failed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "document delete failed")
		return
	}
	h.finish(w, r, "/documents")
}
