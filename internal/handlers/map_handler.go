package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// MapHandler serves the cartography page and its project markers. The
// marker list is static data loaded at startup.
type MapHandler struct {
	BaseHandler
	points   []models.MapPoint
	resolver middlewares.IdentityResolver
}

// NewMapHandler creates a new map handler
func NewMapHandler(points []models.MapPoint, resolver middlewares.IdentityResolver, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		BaseHandler: BaseHandler{logger: logger},
		points:      points,
		resolver:    resolver,
	}
}

// RegisterRoutes registers all map handler routes
func (h *MapHandler) RegisterRoutes(r chi.Router) {
	r.With(middlewares.RequireSession(h.resolver)).Get("/api/cartographie", h.Points)
	r.With(middlewares.RequireSessionPage(h.resolver)).Get("/cartographie", h.Page)
}

// Points handles GET /api/cartographie
// @Summary List map markers
// @Description List the geolocated project markers
// @Tags map
// @Produce json
// @Success 200 {array} model.MapPoint
// @Failure 401 {object} map[string]string
// @Router /api/cartographie [get]
func (h *MapHandler) Points(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.points)
}

// Page handles GET /cartographie and returns the cartography page data.
func (h *MapHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"points": h.points})
}
