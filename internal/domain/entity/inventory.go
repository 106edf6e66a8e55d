package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem existencias de un producto. Hay exactamente una fila por
// producto (constraint único sobre ProductID); el upsert se apoya en eso.
type InventoryItem struct {
	InventoryID   string
	ProductID     string
	StockQuantity decimal.Decimal
	MinStockLevel decimal.Decimal
	BatchNumber   *string
	ExpiryDate    *time.Time
	LastUpdatedAt time.Time
}

// LowStock indica si las existencias están en o por debajo del mínimo.
func (i InventoryItem) LowStock() bool {
	return i.StockQuantity.LessThanOrEqual(i.MinStockLevel)
}

// InventoryWithProduct fila de inventario con el producto y su unidad.
type InventoryWithProduct struct {
	InventoryItem
	ProductName string
	UnitName    *string
}
