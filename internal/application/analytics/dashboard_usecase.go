// Package analytics contiene el caso de uso del resumen del Dashboard.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/emart-api/internal/application/dto"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// DashboardUseCase calcula las cifras de las tarjetas del dashboard a partir
// del estado actual del store de inventario (lecturas puras, sin mutación).
type DashboardUseCase struct {
	store *inventory.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *inventory.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// Summary construye el DashboardSummaryDTO:
//
//   - TotalProducts: tamaño del listado.
//   - LowStockProducts: productos con Status low-stock. Se cuenta por status y
//     no por alerta derivada; las dos cifras pueden divergir porque el status
//     no se transiciona automáticamente.
//   - ActiveAlerts: alertas de la generación actual sin reconocer.
//   - InventoryValue: Σ Cost × Count en decimal.
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryDTO {
	products := uc.store.Products(inventory.Filter{})
	alerts := uc.store.Alerts()

	lowStock := 0
	value := decimal.Zero
	for _, p := range products {
		if p.Status == entity.StatusLowStock {
			lowStock++
		}
		value = value.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Count))))
	}

	active := 0
	for _, a := range alerts {
		if !a.Acknowledged {
			active++
		}
	}

	return dto.DashboardSummaryDTO{
		TotalProducts:    len(products),
		LowStockProducts: lowStock,
		ActiveAlerts:     active,
		InventoryValue:   value,
	}
}
