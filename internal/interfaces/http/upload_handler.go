package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// UploadHandler lista las cargas masivas de inventario. El parseo de archivos
// está fuera del alcance: la colección arranca vacía y el endpoint solo
// respalda la vista de Upload.
type UploadHandler struct {
	store *inventory.Store
}

// NewUploadHandler construye el handler.
func NewUploadHandler(store *inventory.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// List godoc
// @Summary      Listar cargas masivas
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UploadListResponse
// @Router       /api/uploads [get]
func (h *UploadHandler) List(c *fiber.Ctx) error {
	uploads := h.store.Uploads()
	items := make([]dto.UploadResponse, 0, len(uploads))
	for _, u := range uploads {
		items = append(items, toUploadResponse(u))
	}
	return c.JSON(dto.UploadListResponse{Items: items, Total: len(items)})
}

func toUploadResponse(u entity.FileUpload) dto.UploadResponse {
	return dto.UploadResponse{
		ID:          u.ID,
		Filename:    u.Filename,
		TotalRows:   u.TotalRows,
		TotalAmount: u.TotalAmount,
		Timestamp:   u.Timestamp,
		HashCode:    u.HashCode,
		Status:      u.Status,
		UploadedBy:  u.UploadedBy,
		ProcessedAt: u.ProcessedAt,
	}
}
