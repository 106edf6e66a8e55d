package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. Las referencias a catálogo son opcionales.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	UnitID       *string          `json:"unit_id"`
	CostPrice    decimal.Decimal  `json:"cost_price"`
	SellingPrice decimal.Decimal  `json:"selling_price"`
	MRP          decimal.Decimal  `json:"mrp"`
	IsWeighted   bool             `json:"is_weighted"`
	Weight       *decimal.Decimal `json:"weight"`
	WeightUnitID *string          `json:"weight_unit_id"`
}

// UpdateProductRequest actualización parcial: solo los campos presentes se tocan.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	CategoryID   *string          `json:"category_id"`
	UnitID       *string          `json:"unit_id"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	MRP          *decimal.Decimal `json:"mrp"`
	IsWeighted   *bool            `json:"is_weighted"`
	Weight       *decimal.Decimal `json:"weight"`
	WeightUnitID *string          `json:"weight_unit_id"`
}

// ProductResponse producto con sus referencias resueltas y el stock actual.
type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"`
	CategoryName  *string          `json:"category_name"`
	UnitID        *string          `json:"unit_id"`
	UnitName      *string          `json:"unit_name"`
	CostPrice     decimal.Decimal  `json:"cost_price"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	MRP           decimal.Decimal  `json:"mrp"`
	IsWeighted    bool             `json:"is_weighted"`
	Weight        *decimal.Decimal `json:"weight"`
	WeightUnitID  *string          `json:"weight_unit_id"`
	StockQuantity decimal.Decimal  `json:"stock_quantity"`
	CreatedAt     string           `json:"created_at"`
}
