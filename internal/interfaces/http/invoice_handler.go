package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// InvoiceHandler lista las facturas del inventario. La colección arranca
// vacía y ninguna operación crea facturas: el endpoint existe para que el
// cliente pueda renderizar la vista sin casos especiales.
type InvoiceHandler struct {
	store *inventory.Store
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(store *inventory.Store) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

// List godoc
// @Summary      Listar facturas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	invoices := h.store.Invoices()
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, toInvoiceResponse(inv))
	}
	return c.JSON(dto.InvoiceListResponse{Items: items, Total: len(items)})
}

func toInvoiceResponse(inv entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID,
		VendorCode:  inv.VendorCode,
		TotalAmount: inv.TotalAmount,
		Currency:    inv.Currency,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
		DueDate:     inv.DueDate,
	}
}
