package entity

import "time"

// Tipos de alerta derivada.
const (
	AlertLowStock      = "low-stock"
	AlertExpiryWarning = "expiry-warning"
	AlertDamagedGoods  = "damaged-goods" // reservado: ninguna regla lo emite todavía
)

// Severidades de alerta.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Alert es una alerta derivada del listado de productos. Nunca la crea un
// usuario: el conjunto completo se recalcula desde cero en cada cambio de
// productos, por eso el ID es determinista por tipo y producto.
type Alert struct {
	ID           string // "low-stock-{productID}" | "expiry-{productID}"
	Type         string // low-stock, expiry-warning, damaged-goods
	ProductID    string // referencia débil, solo lookup
	Message      string
	Severity     string // low, medium, high
	CreatedAt    time.Time
	Acknowledged bool
}

// LowStockAlertID devuelve el ID determinista de la alerta low-stock de un producto.
func LowStockAlertID(productID string) string { return "low-stock-" + productID }

// ExpiryAlertID devuelve el ID determinista de la alerta expiry-warning de un producto.
func ExpiryAlertID(productID string) string { return "expiry-" + productID }
