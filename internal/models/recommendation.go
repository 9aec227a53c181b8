package models

const (
	RecommendationCashflow  = "rec-cashflow"
	RecommendationDeposit   = "rec-deposit"
	RecommendationDiversify = "rec-diversify"
	RecommendationDefault   = "rec-default"
)

// Recommendation is an advisory card rendered next to the dashboard.
type Recommendation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
}
