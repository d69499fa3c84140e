package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
)

// InventoryHandler maneja los movimientos de stock entre bodega y estante.
type InventoryHandler struct {
	store *inventory.Store
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store *inventory.Store) *InventoryHandler {
	return &InventoryHandler{store: store}
}

// MoveStock godoc
// @Summary      Mover stock de bodega a estante
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.MoveStockRequest  true  "Deltas independientes"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/move [post]
func (h *InventoryHandler) MoveStock(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.MoveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Los deltas se aplican tal cual: sin validar signos ni igualdad entre ambos.
	if err := h.store.MoveStock(id, in.FromWarehouse, in.ToShelf); err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.JSON(toProductResponse(*h.store.Product(id)))
}
