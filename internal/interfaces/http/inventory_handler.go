package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ordenes-api/internal/application/dto"
	"github.com/jhoicas/Ordenes-api/internal/application/inventory"
)

// InventoryHandler ajustes de stock, alertas y conciliación (protegido).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Adjust registra un ajuste manual con motivo.
// POST /api/stock/adjustments
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	level, err := h.uc.Adjust(c.Context(), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StockLevelResponse{
		ProductID: level.ProductID,
		Quantity:  level.Quantity.String(),
	})
}

// LowStock GET /api/stock/low
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// Reconcile GET /api/stock/:product_id/reconcile
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	res, err := h.uc.Reconcile(c.Context(), c.Params("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
