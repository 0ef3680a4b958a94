package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	manager *inventory.Manager
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(manager *inventory.Manager) *CategoryHandler {
	return &CategoryHandler{manager: manager}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateRequest(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	category, err := h.manager.CreateCategory(in.Name)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCategoryResponse(*category))
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	state := h.manager.Snapshot()
	items := make([]dto.CategoryResponse, 0, len(state.Categories))
	for _, cat := range state.Categories {
		items = append(items, toCategoryResponse(cat))
	}
	return c.JSON(dto.CategoryListResponse{Items: items, Total: len(items)})
}

// Delete godoc
// @Summary      Eliminar categoría (sus productos quedan sin categoría)
// @Tags         categories
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	h.manager.DeleteCategory(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
