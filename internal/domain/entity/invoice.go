package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Invoice.
const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusApproved = "approved"
	InvoiceStatusSent     = "sent"
)

// Invoice representa una factura de proveedor. La generación de facturas está
// fuera del alcance: la colección expuesta siempre está vacía.
type Invoice struct {
	ID          string
	VendorCode  string
	Products    []Product
	TotalAmount decimal.Decimal
	Currency    string
	Status      string // pending, approved, sent
	CreatedAt   time.Time
	DueDate     time.Time
}
