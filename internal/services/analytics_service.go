package services

import (
	"github.com/regionboard/backend/internal/models"
)

// Recommendations produced by the anomaly report.
const (
	RecommendationReduceBudget = "reduce or defer future budget"
	RecommendationAllocate     = "allocate additional resources"
	RecommendationNone         = "no action needed"
)

// anomalyMargin is the tolerated overshoot before a budget or delay counts
// as anomalous: 10% over plan.
const anomalyMargin = 1.1

// analyticsService evaluates the threshold rules over the project review
// rows and serves the canned dashboard figures. It is stateless apart from
// the static rows it is given.
type analyticsService struct {
	reviews   []models.ProjectReview
	dashboard models.DashboardStats
	usage     models.UsageStats
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(reviews []models.ProjectReview) *analyticsService {
	return &analyticsService{
		reviews: reviews,
		dashboard: models.DashboardStats{
			TotalDocuments:    15,
			BudgetExecuted:    85,
			DistrictsCovered:  22,
			DelayedProjects:   3,
			CompletedProjects: 18,
			TotalBudget:       "2.4B",
		},
		usage: models.UsageStats{
			TotalUsers:    1500,
			ActiveUsers:   1200,
			InactiveUsers: 300,
			Sessions:      5000,
		},
	}
}

// DashboardStats returns the headline dashboard figures.
func (s *analyticsService) DashboardStats() models.DashboardStats {
	return s.dashboard
}

// UsageStats returns the analytics page figures.
func (s *analyticsService) UsageStats() models.UsageStats {
	return s.usage
}

// Evaluate annotates every review row with the anomaly flags and a
// recommendation. A project is over budget when executed spend exceeds the
// planned budget by more than the margin, and delayed when the actual
// duration exceeds the planned one by more than the margin.
func (s *analyticsService) Evaluate() []models.ProjectAnomaly {
	out := make([]models.ProjectAnomaly, 0, len(s.reviews))
	for _, row := range s.reviews {
		anomaly := models.ProjectAnomaly{
			ProjectReview:  row,
			AnomalieBudget: float64(row.Executed) > float64(row.Budget)*anomalyMargin,
			AnomalieDelai:  float64(row.DelaiReal) > float64(row.Delai)*anomalyMargin,
		}
		anomaly.Recommandation = recommend(anomaly)
		out = append(out, anomaly)
	}
	return out
}

// Anomalies returns only the rows with at least one anomaly flag set.
func (s *analyticsService) Anomalies() []models.ProjectAnomaly {
	var out []models.ProjectAnomaly
	for _, row := range s.Evaluate() {
		if row.AnomalieBudget || row.AnomalieDelai {
			out = append(out, row)
		}
	}
	return out
}

// recommend picks the recommendation for one annotated row. A delay wins
// over a budget overrun: late projects need resources regardless of spend.
func recommend(row models.ProjectAnomaly) string {
	switch {
	case row.AnomalieDelai:
		return RecommendationAllocate
	case row.AnomalieBudget:
		return RecommendationReduceBudget
	default:
		return RecommendationNone
	}
}
