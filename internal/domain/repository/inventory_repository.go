package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para las existencias.
type InventoryRepository interface {
	List() ([]*entity.InventoryWithProduct, error)
	GetByProduct(productID string) (*entity.InventoryWithProduct, error)
	// Upsert inserta o reemplaza la fila de existencias del producto
	// (único por product_id). Idempotente para payloads idénticos.
	Upsert(item *entity.InventoryItem) (*entity.InventoryItem, error)
	// CreateZero crea la fila de existencias en cero para un producto nuevo.
	CreateZero(inventoryID, productID string) error
	// DecrementStock descuenta qty sin piso: el stock puede quedar negativo
	// bajo sobreventa concurrente (decisión registrada en DESIGN.md).
	DecrementStock(productID string, qty decimal.Decimal) error
	DeleteByProduct(productID string) error
}
