package dto

import "github.com/shopspring/decimal"

// UpsertInventoryRequest fija las existencias de un producto. La fecha de
// vencimiento va en formato YYYY-MM-DD cuando está presente.
type UpsertInventoryRequest struct {
	ProductID     string          `json:"product_id" validate:"required"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	BatchNumber   *string         `json:"batch_number"`
	ExpiryDate    *string         `json:"expiry_date"`
}

// InventoryResponse fila de inventario con el producto resuelto.
type InventoryResponse struct {
	InventoryID   string          `json:"inventory_id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	UnitName      *string         `json:"unit_name"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	BatchNumber   *string         `json:"batch_number"`
	ExpiryDate    *string         `json:"expiry_date"`
	LowStock      bool            `json:"low_stock"`
	LastUpdatedAt string          `json:"last_updated_at"`
}
