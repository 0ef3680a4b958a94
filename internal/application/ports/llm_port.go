package ports

import (
	"context"

	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// InsightService define el puerto de salida hacia el servicio de generación de
// texto. Cualquier adaptador (Gemini, mock) debe implementar esta interfaz; la
// capa de aplicación solo conoce este contrato, no la implementación concreta.
type InsightService interface {
	// GenerateInsight produce un resumen del inventario a partir de los
	// productos y transacciones actuales. Un solo intento por invocación, sin
	// reintentos. El contexto debe llevar timeout para no bloquear al caller.
	GenerateInsight(
		ctx context.Context,
		products []entity.Product,
		transactions []entity.Transaction,
	) (*entity.Insight, error)
}
