package dto

import "github.com/shopspring/decimal"

// CreateExpenseCategoryRequest alta de categoría de gasto.
type CreateExpenseCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// ExpenseCategoryResponse categoría de gasto expuesta por la API.
type ExpenseCategoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}

// CreateExpenseRequest alta de gasto. La fecha va en formato YYYY-MM-DD.
type CreateExpenseRequest struct {
	Description       string          `json:"description" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	ExpenseDate       string          `json:"expense_date" validate:"required"`
	ExpenseCategoryID string          `json:"expense_category_id" validate:"required"`
	PaymentMethod     *string         `json:"payment_method"`
	Account           *string         `json:"account"`
	Notes             *string         `json:"notes"`
}

// UpdateExpenseRequest actualización parcial: cada campo presente cuyo valor
// difiera del almacenado genera una entrada en la bitácora de cambios.
type UpdateExpenseRequest struct {
	Description       *string          `json:"description"`
	Amount            *decimal.Decimal `json:"amount"`
	ExpenseDate       *string          `json:"expense_date"`
	ExpenseCategoryID *string          `json:"expense_category_id"`
	PaymentMethod     *string          `json:"payment_method"`
	Account           *string          `json:"account"`
	Notes             *string          `json:"notes"`
}

// ExpenseResponse gasto con el nombre de su categoría.
type ExpenseResponse struct {
	ID                string          `json:"id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	ExpenseDate       string          `json:"expense_date"`
	ExpenseCategoryID string          `json:"expense_category_id"`
	CategoryName      *string         `json:"category_name"`
	PaymentMethod     *string         `json:"payment_method"`
	Account           *string         `json:"account"`
	Notes             *string         `json:"notes"`
	CreatedAt         string          `json:"created_at"`
}

// ExpenseChangeLogResponse entrada de la bitácora de cambios de un gasto.
type ExpenseChangeLogResponse struct {
	LogID     string `json:"log_id"`
	ExpenseID string `json:"expense_id"`
	FieldName string `json:"field_name"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	ChangedBy string `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
}
