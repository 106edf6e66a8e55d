package usecase

import (
	"context"

	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// ExpenseTxRunner ejecuta el callback de actualización de gasto dentro de una
// transacción: el diff, la bitácora y el update se confirman juntos o ninguno.
type ExpenseTxRunner interface {
	RunExpense(ctx context.Context, fn func(expenseRepo repository.ExpenseRepository) error) error
}

// ProductTxRunner ejecuta altas y bajas de producto junto con su fila de
// inventario en una sola transacción.
type ProductTxRunner interface {
	RunProduct(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}
