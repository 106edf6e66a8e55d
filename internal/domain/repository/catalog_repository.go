package repository

import (
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// CategoryPatch campos actualizables de una categoría. Un puntero nil significa
// "conservar el valor almacenado" (merge estilo COALESCE).
type CategoryPatch struct {
	Name    *string
	GSTRate *decimal.Decimal
}

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	List() ([]*entity.Category, error)
	Create(category *entity.Category) error
	UpdatePartial(id string, patch CategoryPatch) (*entity.Category, error)
	Delete(id string) error
}

// UnitPatch campos actualizables de una unidad de medida.
type UnitPatch struct {
	UnitName         *string
	ConversionFactor *decimal.Decimal
}

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	List() ([]*entity.Unit, error)
	Create(unit *entity.Unit) error
	UpdatePartial(id string, patch UnitPatch) (*entity.Unit, error)
	Delete(id string) error
}
