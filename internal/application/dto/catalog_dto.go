package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest alta de categoría.
type CreateCategoryRequest struct {
	Name    string          `json:"name" validate:"required"`
	GSTRate decimal.Decimal `json:"gst_rate"`
}

// UpdateCategoryRequest actualización parcial de categoría.
type UpdateCategoryRequest struct {
	Name    *string          `json:"name"`
	GSTRate *decimal.Decimal `json:"gst_rate"`
}

// CategoryResponse categoría expuesta por la API.
type CategoryResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	GSTRate decimal.Decimal `json:"gst_rate"`
}

// CreateUnitRequest alta de unidad de medida.
type CreateUnitRequest struct {
	UnitName         string          `json:"unit_name" validate:"required"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
}

// UpdateUnitRequest actualización parcial de unidad.
type UpdateUnitRequest struct {
	UnitName         *string          `json:"unit_name"`
	ConversionFactor *decimal.Decimal `json:"conversion_factor"`
}

// UnitResponse unidad expuesta por la API.
type UnitResponse struct {
	ID               string          `json:"id"`
	UnitName         string          `json:"unit_name"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
}
