package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// dateLayout formato de fecha calendario de ExpiryDate en la API.
const dateLayout = "2006-01-02"

// CreateProductRequest entrada para crear un producto. El ID y los timestamps
// los asigna el store; no se validan los campos numéricos (responsabilidad del
// caller, igual que en el dashboard original).
type CreateProductRequest struct {
	VendorCode     string          `json:"vendor_code" validate:"required"`
	Category       string          `json:"category" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	Count          int             `json:"count"`
	Cost           decimal.Decimal `json:"cost"`
	Currency       string          `json:"currency"`
	ExpiryDate     string          `json:"expiry_date" validate:"required"` // yyyy-mm-dd
	WarehouseStock int             `json:"warehouse_stock"`
	ShelfStock     int             `json:"shelf_stock"`
	Threshold      int             `json:"threshold"`
	Barcode        string          `json:"barcode"`
	Status         string          `json:"status" validate:"omitempty,oneof=active low-stock expired damaged"`
}

// UpdateProductRequest actualización parcial tipada: solo los campos presentes
// se aplican. Approved/ApprovedBy se manejan con el endpoint de aprobación.
type UpdateProductRequest struct {
	VendorCode     *string          `json:"vendor_code"`
	Category       *string          `json:"category"`
	Description    *string          `json:"description"`
	Count          *int             `json:"count"`
	Cost           *decimal.Decimal `json:"cost"`
	Currency       *string          `json:"currency"`
	ExpiryDate     *string          `json:"expiry_date"` // yyyy-mm-dd
	WarehouseStock *int             `json:"warehouse_stock"`
	ShelfStock     *int             `json:"shelf_stock"`
	Threshold      *int             `json:"threshold"`
	Barcode        *string          `json:"barcode"`
	Status         *string          `json:"status" validate:"omitempty,oneof=active low-stock expired damaged"`
}

// MoveStockRequest deltas del traslado bodega → estante. Son independientes a
// propósito: no se fuerza from_warehouse == to_shelf.
type MoveStockRequest struct {
	FromWarehouse int `json:"from_warehouse"`
	ToShelf       int `json:"to_shelf"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	VendorCode     string          `json:"vendor_code"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Count          int             `json:"count"`
	Cost           decimal.Decimal `json:"cost"`
	Currency       string          `json:"currency"`
	ExpiryDate     string          `json:"expiry_date"`
	WarehouseStock int             `json:"warehouse_stock"`
	ShelfStock     int             `json:"shelf_stock"`
	Threshold      int             `json:"threshold"`
	Barcode        string          `json:"barcode,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CreatedBy      string          `json:"created_by"`
	ApprovedBy     string          `json:"approved_by,omitempty"`
	Approved       bool            `json:"approved"`
}

// ProductListResponse listado de productos filtrado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryListResponse categorías distintas del inventario.
type CategoryListResponse struct {
	Items []string `json:"items"`
}

// ParseDate interpreta una fecha calendario yyyy-mm-dd.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// FormatDate serializa una fecha calendario como yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
