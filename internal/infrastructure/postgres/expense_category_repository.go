package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

var _ repository.ExpenseCategoryRepository = (*ExpenseCategoryRepo)(nil)

// ExpenseCategoryRepo implementación de ExpenseCategoryRepository (usable con pool o tx).
type ExpenseCategoryRepo struct {
	q Querier
}

// NewExpenseCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseCategoryRepository(q Querier) *ExpenseCategoryRepo {
	return &ExpenseCategoryRepo{q: q}
}

// List lista las categorías de gasto ordenadas por nombre.
func (r *ExpenseCategoryRepo) List() ([]*entity.ExpenseCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id, category_name FROM expense_categories ORDER BY category_name`)
	if err != nil {
		return nil, fmt.Errorf("list expense categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseCategory
	for rows.Next() {
		var c entity.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.CategoryName); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste una categoría de gasto.
func (r *ExpenseCategoryRepo) Create(category *entity.ExpenseCategory) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO expense_categories (category_id, category_name) VALUES ($1, $2)`,
		category.ID, category.CategoryName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense category: %w", err)
	}
	return nil
}

// Update renombra una categoría de gasto. Retorna nil si no existe.
func (r *ExpenseCategoryRepo) Update(id, categoryName string) (*entity.ExpenseCategory, error) {
	var c entity.ExpenseCategory
	err := r.q.QueryRow(context.Background(),
		`UPDATE expense_categories SET category_name = $2 WHERE category_id = $1
		 RETURNING category_id, category_name`,
		id, categoryName,
	).Scan(&c.ID, &c.CategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update expense category: %w", err)
	}
	return &c, nil
}

// Delete elimina una categoría de gasto. ErrForeignKey si algún gasto la referencia.
func (r *ExpenseCategoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM expense_categories WHERE category_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete expense category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
