package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// ExpenseCategoryRepository define el puerto para categorías de gasto.
type ExpenseCategoryRepository interface {
	List() ([]*entity.ExpenseCategory, error)
	Create(category *entity.ExpenseCategory) error
	Update(id, categoryName string) (*entity.ExpenseCategory, error)
	Delete(id string) error
}

// ExpensePatch campos actualizables de un gasto. Conjunto estático: el handler
// nunca construye cláusulas SET a partir de claves arbitrarias del body.
type ExpensePatch struct {
	Description       *string
	Amount            *decimal.Decimal
	ExpenseDate       *time.Time
	ExpenseCategoryID *string
	PaymentMethod     *string
	Account           *string
	Notes             *string
}

// ExpenseRepository define el puerto para gastos y su historial de cambios.
// El changelog pertenece al mismo agregado: se escribe en la misma transacción
// que la actualización del gasto.
type ExpenseRepository interface {
	List() ([]*entity.ExpenseWithCategory, error)
	Create(expense *entity.Expense) error
	// GetByIDForUpdate lee el gasto bloqueando la fila (SELECT ... FOR UPDATE)
	// para que el diff del changelog no corra contra un estado ya cambiado.
	GetByIDForUpdate(id string) (*entity.Expense, error)
	UpdatePartial(id string, patch ExpensePatch) (*entity.Expense, error)
	Delete(id string) error
	AppendChangeLog(log *entity.ExpenseChangeLog) error
	ListChangeLogs(expenseID string) ([]*entity.ExpenseChangeLog, error)
}
