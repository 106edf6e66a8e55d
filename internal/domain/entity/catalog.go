package entity

import "github.com/shopspring/decimal"

// Category categoría de producto con su tarifa GST asociada.
// Name es único en toda la tienda.
type Category struct {
	ID      string
	Name    string
	GSTRate decimal.Decimal // porcentaje GST aplicado a las líneas de venta
}

// Unit unidad de medida. ConversionFactor convierte cantidades pesadas
// a la unidad base al momento de la venta (ej: g -> kg = 0.001).
type Unit struct {
	ID               string
	UnitName         string
	ConversionFactor decimal.Decimal
}
