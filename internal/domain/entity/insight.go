package entity

// Estados posibles de un Insight.
const (
	InsightStatusCritical = "critical"
	InsightStatusWarning  = "warning"
	InsightStatusGood     = "good"
)

// Insight es el resumen generado por IA a partir de las estadísticas agregadas
// del inventario.
type Insight struct {
	Status     string `json:"status"` // critical, warning, good
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// FallbackInsight es el valor fijo que recibe el caller cuando la generación
// falla por cualquier motivo (red, cuota, respuesta malformada). El fallo del
// gateway nunca se propaga como error.
func FallbackInsight() *Insight {
	return &Insight{
		Status:     InsightStatusWarning,
		Message:    "No se pudo generar el análisis de IA.",
		Suggestion: "Verifica la conexión a internet y que la clave API sea válida.",
	}
}
