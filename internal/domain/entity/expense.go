package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory categoría de gasto (alquiler, luz, proveedores...).
type ExpenseCategory struct {
	ID           string
	CategoryName string
}

// Expense gasto de la tienda. A diferencia de las ventas, un gasto es mutable;
// cada modificación queda registrada en ExpenseChangeLog.
type Expense struct {
	ID                string
	Description       string
	Amount            decimal.Decimal
	ExpenseDate       time.Time
	ExpenseCategoryID string
	PaymentMethod     *string
	Account           *string
	Notes             *string
	CreatedAt         time.Time
}

// ExpenseWithCategory gasto con el nombre de su categoría para listados.
type ExpenseWithCategory struct {
	Expense
	CategoryName *string
}

// ExpenseChangeLog entrada del historial de cambios de un gasto (append-only).
type ExpenseChangeLog struct {
	LogID     string
	ExpenseID string
	FieldName string
	OldValue  string
	NewValue  string
	ChangedBy string
	ChangedAt time.Time
}
