package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// ReportGenerator genera el PDF del inventario actual.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, state *entity.State) ([]byte, error)
}

// StateHandler maneja exportación, reporte y reinicio del estado completo.
type StateHandler struct {
	manager *inventory.Manager
	report  ReportGenerator
}

// NewStateHandler construye el handler.
func NewStateHandler(manager *inventory.Manager, report ReportGenerator) *StateHandler {
	return &StateHandler{manager: manager, report: report}
}

// Export godoc
// @Summary      Exportar el estado completo como JSON descargable
// @Tags         state
// @Produce      json
// @Success      200  {object}  entity.State
// @Router       /api/state/export [get]
func (h *StateHandler) Export(c *fiber.Ctx) error {
	doc, err := h.manager.Export()
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stokpro_backup.json"`)
	return c.Send(doc)
}

// ReportPDF godoc
// @Summary      Reporte PDF del inventario actual
// @Tags         state
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/state/report.pdf [get]
func (h *StateHandler) ReportPDF(c *fiber.Ctx) error {
	doc, err := h.report.GenerateInventoryReport(c.UserContext(), h.manager.Snapshot())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stokpro_reporte.pdf"`)
	return c.Send(doc)
}

// Reset godoc
// @Summary      Borrar todos los datos y volver al catálogo inicial
// @Tags         state
// @Produce      json
// @Success      200  {object}  entity.State
// @Router       /api/state/reset [post]
func (h *StateHandler) Reset(c *fiber.Ctx) error {
	if err := h.manager.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.manager.Snapshot())
}
