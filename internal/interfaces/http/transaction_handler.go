package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
)

// TransactionHandler maneja las peticiones HTTP para movimientos de stock.
type TransactionHandler struct {
	manager *inventory.Manager
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(manager *inventory.Manager) *TransactionHandler {
	return &TransactionHandler{manager: manager}
}

// Register godoc
// @Summary      Registrar transacción de stock (IN u OUT)
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/transactions [post]
func (h *TransactionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateRequest(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	tx, err := h.manager.ApplyTransaction(in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(*tx))
}

// List godoc
// @Summary      Listar transacciones en orden cronológico
// @Tags         transactions
// @Produce      json
// @Success      200  {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	state := h.manager.Snapshot()
	items := make([]dto.TransactionResponse, 0, len(state.Transactions))
	for _, t := range state.Transactions {
		items = append(items, toTransactionResponse(t))
	}
	return c.JSON(dto.TransactionListResponse{Items: items, Total: len(items)})
}
