package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product. El store nunca los transiciona por sí solo:
// se fijan únicamente en los puntos de creación/actualización.
const (
	StatusActive   = "active"
	StatusLowStock = "low-stock"
	StatusExpired  = "expired"
	StatusDamaged  = "damaged"
)

// Product representa un producto del inventario.
// Por convención WarehouseStock + ShelfStock acompaña a Count, pero no se fuerza.
type Product struct {
	ID             string // timestamp de alta resolución asignado al crear
	VendorCode     string
	Category       string
	Description    string
	Count          int             // unidades totales
	Cost           decimal.Decimal // precio unitario
	Currency       string
	ExpiryDate     time.Time // fecha calendario
	WarehouseStock int
	ShelfStock     int
	Threshold      int // punto de reorden
	Barcode        string
	Status         string // active, low-stock, expired, damaged
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
	ApprovedBy     string
	Approved       bool
}
