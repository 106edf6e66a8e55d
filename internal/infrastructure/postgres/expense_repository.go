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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación de ExpenseRepository, changelog incluido (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// List lista los gastos con el nombre de su categoría, más recientes primero.
func (r *ExpenseRepo) List() ([]*entity.ExpenseWithCategory, error) {
	query := `
		SELECT e.expense_id, e.description, e.amount, e.expense_date, e.expense_category_id,
		       e.payment_method, e.account, e.notes, e.created_at,
		       ec.category_name
		FROM expenses e
		LEFT JOIN expense_categories ec ON e.expense_category_id = ec.category_id
		ORDER BY e.expense_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseWithCategory
	for rows.Next() {
		var e entity.ExpenseWithCategory
		if err := rows.Scan(
			&e.ID, &e.Description, &e.Amount, &e.ExpenseDate, &e.ExpenseCategoryID,
			&e.PaymentMethod, &e.Account, &e.Notes, &e.CreatedAt,
			&e.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Create persiste un nuevo gasto.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses
		(expense_id, description, amount, expense_date, expense_category_id, payment_method, account, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Amount, expense.ExpenseDate,
		expense.ExpenseCategoryID, expense.PaymentMethod, expense.Account, expense.Notes,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByIDForUpdate lee un gasto bloqueando la fila, para que el diff del
// changelog se calcule contra un estado estable dentro de la transacción.
func (r *ExpenseRepo) GetByIDForUpdate(id string) (*entity.Expense, error) {
	query := `
		SELECT expense_id, description, amount, expense_date, expense_category_id,
		       payment_method, account, notes, created_at
		FROM expenses WHERE expense_id = $1 FOR UPDATE`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Description, &e.Amount, &e.ExpenseDate, &e.ExpenseCategoryID,
		&e.PaymentMethod, &e.Account, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// UpdatePartial aplica un merge estilo COALESCE con los campos presentes del patch.
func (r *ExpenseRepo) UpdatePartial(id string, patch repository.ExpensePatch) (*entity.Expense, error) {
	query := `
		UPDATE expenses
		SET description = COALESCE($2, description),
		    amount = COALESCE($3, amount),
		    expense_date = COALESCE($4, expense_date),
		    expense_category_id = COALESCE($5, expense_category_id),
		    payment_method = COALESCE($6, payment_method),
		    account = COALESCE($7, account),
		    notes = COALESCE($8, notes)
		WHERE expense_id = $1
		RETURNING expense_id, description, amount, expense_date, expense_category_id, payment_method, account, notes, created_at`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id,
		patch.Description, patch.Amount, patch.ExpenseDate, patch.ExpenseCategoryID,
		patch.PaymentMethod, patch.Account, patch.Notes,
	).Scan(
		&e.ID, &e.Description, &e.Amount, &e.ExpenseDate, &e.ExpenseCategoryID,
		&e.PaymentMethod, &e.Account, &e.Notes, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrForeignKey
		}
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return &e, nil
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM expenses WHERE expense_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendChangeLog agrega una entrada al historial (append-only).
func (r *ExpenseRepo) AppendChangeLog(log *entity.ExpenseChangeLog) error {
	query := `
		INSERT INTO expense_change_logs (log_id, expense_id, field_name, old_value, new_value, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		log.LogID, log.ExpenseID, log.FieldName, log.OldValue, log.NewValue, log.ChangedBy,
	)
	if err != nil {
		return fmt.Errorf("insert expense change log: %w", err)
	}
	return nil
}

// ListChangeLogs lista el historial de un gasto, más reciente primero.
func (r *ExpenseRepo) ListChangeLogs(expenseID string) ([]*entity.ExpenseChangeLog, error) {
	query := `
		SELECT log_id, expense_id, field_name, old_value, new_value, changed_by, changed_at
		FROM expense_change_logs
		WHERE expense_id = $1
		ORDER BY changed_at DESC`
	rows, err := r.q.Query(context.Background(), query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("list expense change logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ExpenseChangeLog
	for rows.Next() {
		var l entity.ExpenseChangeLog
		if err := rows.Scan(&l.LogID, &l.ExpenseID, &l.FieldName, &l.OldValue, &l.NewValue, &l.ChangedBy, &l.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan expense change log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
