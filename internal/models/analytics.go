package models

// DashboardStats are the headline figures shown on the dashboard.
type DashboardStats struct {
	TotalDocuments    int    `json:"total_documents"`
	BudgetExecuted    int    `json:"budget_executed"`
	DistrictsCovered  int    `json:"districts_covered"`
	DelayedProjects   int    `json:"delayed_projects"`
	CompletedProjects int    `json:"completed_projects"`
	TotalBudget       string `json:"total_budget"`
}

// UsageStats are the figures shown on the analytics page.
type UsageStats struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	InactiveUsers int `json:"inactive_users"`
	Sessions      int `json:"sessions"`
}

// ProjectReview is one budget/timeline row fed to the anomaly report.
// Delai values are planned and actual durations in days.
type ProjectReview struct {
	ID        int    `json:"id"`
	Nom       string `json:"nom"`
	Budget    int    `json:"budget"`
	Executed  int    `json:"executed"`
	Delai     int    `json:"delai"`
	DelaiReal int    `json:"delai_real"`
}

// ProjectAnomaly is a review row annotated with the threshold flags and
// the resulting recommendation.
type ProjectAnomaly struct {
	ProjectReview
	AnomalieBudget bool   `json:"anomalie_budget"`
	AnomalieDelai  bool   `json:"anomalie_delai"`
	Recommandation string `json:"recommandation"`
}
