package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceResponse salida de una factura (la colección siempre está vacía:
// la generación de facturas está fuera del alcance).
type InvoiceResponse struct {
	ID          string          `json:"id"`
	VendorCode  string          `json:"vendor_code"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	DueDate     time.Time       `json:"due_date"`
}

// InvoiceListResponse listado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}
