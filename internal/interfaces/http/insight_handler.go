package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stokpro-api/internal/application/usecase"
)

// InsightHandler maneja las peticiones del insight de IA.
type InsightHandler struct {
	uc *usecase.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *usecase.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Get godoc
// @Summary      Insight vigente
// @Tags         insights
// @Produce      json
// @Success      200  {object}  dto.InsightDTO
// @Router       /api/insights [get]
func (h *InsightHandler) Get(c *fiber.Ctx) error {
	insight, refreshing := h.uc.Current()
	return c.JSON(toInsightDTO(insight, refreshing))
}

// Refresh godoc
// @Summary      Regenerar el insight a partir del estado actual
// @Description  Bloquea hasta obtener el resultado de esta solicitud. Una
// @Description  solicitud nueva cancela la que esté en vuelo; en caso de fallo
// @Description  del servicio se devuelve el insight de respaldo, nunca un error.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  dto.InsightDTO
// @Router       /api/insights/refresh [post]
func (h *InsightHandler) Refresh(c *fiber.Ctx) error {
	insight := h.uc.Refresh(c.UserContext())
	return c.JSON(toInsightDTO(insight, false))
}
