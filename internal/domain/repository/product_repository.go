package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// ProductPatch campos actualizables de un producto. El conjunto está declarado
// estáticamente: ninguna clave arbitraria del request llega a la construcción del SQL.
type ProductPatch struct {
	Name         *string
	Description  *string
	CategoryID   *string
	UnitID       *string
	CostPrice    *decimal.Decimal
	SellingPrice *decimal.Decimal
	MRP          *decimal.Decimal
	IsWeighted   *bool
	Weight       *decimal.Decimal
	WeightUnitID *string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List() ([]*entity.ProductWithRefs, error)
	GetByID(id string) (*entity.ProductWithRefs, error)
	// GetName resuelve el nombre actual del producto; lo usa el checkout para
	// denormalizar la línea de venta. Retorna domain.ErrProductNotFound si no existe.
	GetName(id string) (string, error)
	Create(product *entity.Product) error
	UpdatePartial(id string, patch ProductPatch) (*entity.Product, error)
	Delete(id string) error
}
