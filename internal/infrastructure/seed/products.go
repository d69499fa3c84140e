// Package seed contiene el dataset demo con el que arranca el inventario.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/emart-api/internal/domain/entity"
)

var seedDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Products devuelve los tres productos demo. El llamador recibe su propia
// copia: puede mutarla sin afectar llamadas posteriores.
func Products() []entity.Product {
	return []entity.Product{
		{
			ID:             "1",
			VendorCode:     "VND001",
			Category:       "Dairy",
			Description:    "Fresh Milk 1L",
			Count:          120,
			Cost:           decimal.RequireFromString("3.99"),
			Currency:       "USD",
			ExpiryDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			WarehouseStock: 80,
			ShelfStock:     40,
			Threshold:      20,
			Status:         entity.StatusActive,
			CreatedAt:      seedDate,
			UpdatedAt:      seedDate,
			CreatedBy:      "maker",
			Approved:       true,
			ApprovedBy:     "checker",
		},
		{
			ID:             "2",
			VendorCode:     "VND002",
			Category:       "Fruits",
			Description:    "Organic Apples 2lb",
			Count:          45,
			Cost:           decimal.RequireFromString("5.99"),
			Currency:       "USD",
			ExpiryDate:     time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			WarehouseStock: 25,
			ShelfStock:     20,
			Threshold:      50,
			Status:         entity.StatusLowStock,
			CreatedAt:      seedDate,
			UpdatedAt:      seedDate,
			CreatedBy:      "maker",
			Approved:       true,
			ApprovedBy:     "checker",
		},
		{
			ID:             "3",
			VendorCode:     "VND003",
			Category:       "Vegetables",
			Description:    "Fresh Spinach 1lb",
			Count:          30,
			Cost:           decimal.RequireFromString("2.99"),
			Currency:       "USD",
			ExpiryDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			WarehouseStock: 15,
			ShelfStock:     15,
			Threshold:      25,
			Status:         entity.StatusActive,
			CreatedAt:      seedDate,
			UpdatedAt:      seedDate,
			CreatedBy:      "maker",
			Approved:       false,
		},
	}
}
