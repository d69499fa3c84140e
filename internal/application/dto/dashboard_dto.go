package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen del dashboard: cifras de las tarjetas de
// estadísticas sobre el estado actual del inventario.
type DashboardSummaryDTO struct {
	TotalProducts    int             `json:"total_products"`
	LowStockProducts int             `json:"low_stock_products"` // por status, no por alerta
	ActiveAlerts     int             `json:"active_alerts"`      // alertas sin reconocer
	InventoryValue   decimal.Decimal `json:"inventory_value"`    // Σ cost × count
}
