package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Los campos de precio son NUMERIC no negativos.
// Un producto pesado (IsWeighted) se vende por cantidad continua (peso) y
// requiere conversión de unidad al momento de la venta.
type Product struct {
	ID           string
	Name         string
	Description  *string
	CategoryID   *string
	UnitID       *string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	MRP          decimal.Decimal
	IsWeighted   bool
	Weight       *decimal.Decimal
	WeightUnitID *string
	CreatedAt    time.Time
}

// ProductWithRefs producto con nombres denormalizados de categoría/unidad y
// stock actual, tal como lo consume el listado del catálogo.
type ProductWithRefs struct {
	Product
	CategoryName  *string
	UnitName      *string
	StockQuantity decimal.Decimal
}
