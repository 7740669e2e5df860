package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/regionboard/backend/internal/middlewares"
	"github.com/regionboard/backend/internal/models"
	"go.uber.org/zap"
)

// AnalyticsService is the interface that wraps methods for the dashboard and
// anomaly report business logic.
type AnalyticsService interface {
	// Method DashboardStats returns the headline dashboard figures.
	DashboardStats() models.DashboardStats
	// Method UsageStats returns the analytics page figures.
	UsageStats() models.UsageStats
	// Method Evaluate annotates every review row with the anomaly flags and
	// a recommendation.
	Evaluate() []models.ProjectAnomaly
	// Method Anomalies returns only the rows with at least one anomaly flag.
	Anomalies() []models.ProjectAnomaly
}

// AnalyticsHandler handles HTTP requests for the dashboard, analytics and
// report pages
type AnalyticsHandler struct {
	BaseHandler
	service  AnalyticsService
	reports  []models.Report
	tools    []models.FieldTool
	resolver middlewares.IdentityResolver
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	svc AnalyticsService,
	reports []models.Report,
	tools []models.FieldTool,
	resolver middlewares.IdentityResolver,
	logger *zap.Logger,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		reports:     reports,
		tools:       tools,
		resolver:    resolver,
	}
}

// RegisterRoutes registers all analytics handler routes
func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession(h.resolver))
		r.Get("/api/dashboard", h.Dashboard)
		r.Get("/api/analytics", h.Analytics)
		r.Get("/api/analytics/anomalies", h.AnomalyReport)
		r.Get("/api/rapports", h.Reports)
		r.Get("/api/outils_terrain", h.FieldTools)
	})

	r.With(middlewares.RequireSessionPage(h.resolver)).Get("/dashboard", h.DashboardPage)
}

// DashboardPage handles GET /dashboard, the landing page after login.
func (h *AnalyticsHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"stats": h.service.DashboardStats()})
}

// Dashboard handles GET /api/dashboard
// @Summary Dashboard figures
// @Description Get the headline dashboard figures
// @Tags analytics
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Failure 401 {object} map[string]string
// @Router /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.DashboardStats())
}

// Analytics handles GET /api/analytics. The page shows usage figures plus
// the projects currently flagged by the anomaly rules.
func (h *AnalyticsHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{
		"stats":     h.service.UsageStats(),
		"anomalies": h.service.Anomalies(),
	})
}

// AnomalyReport handles GET /api/analytics/anomalies
// @Summary Anomaly report
// @Description Get every project review row annotated with anomaly flags and a recommendation
// @Tags analytics
// @Produce json
// @Success 200 {array} model.ProjectAnomaly
// @Failure 401 {object} map[string]string
// @Router /api/analytics/anomalies [get]
func (h *AnalyticsHandler) AnomalyReport(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Evaluate())
}

// Reports handles GET /api/rapports and lists the canned reports.
func (h *AnalyticsHandler) Reports(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.reports)
}

// FieldTools handles GET /api/outils_terrain and lists the field tools.
func (h *AnalyticsHandler) FieldTools(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.tools)
}
