package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// AlertHandler expone la generación actual de alertas del inventario.
type AlertHandler struct {
	store *inventory.Store
}

// NewAlertHandler construye el handler.
func NewAlertHandler(store *inventory.Store) *AlertHandler {
	return &AlertHandler{store: store}
}

// List godoc
// @Summary      Listar alertas derivadas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	alerts := h.store.Alerts()
	items := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, toAlertResponse(a))
	}
	return c.JSON(dto.AlertListResponse{Items: items, Total: len(items)})
}

// Acknowledge godoc
// @Summary      Reconocer una alerta
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la alerta"
// @Success      204  "reconocida"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/acknowledge [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	if err := h.store.AcknowledgeAlert(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrAlertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func toAlertResponse(a entity.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:           a.ID,
		Type:         string(a.Type),
		ProductID:    a.ProductID,
		Message:      a.Message,
		Severity:     string(a.Severity),
		CreatedAt:    a.CreatedAt,
		Acknowledged: a.Acknowledged,
	}
}
