package dto

// InsightDTO respuesta de GET /api/insights.
type InsightDTO struct {
	Status     string `json:"status"` // critical, warning, good
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
	Refreshing bool   `json:"refreshing"` // hay una generación en curso
}
