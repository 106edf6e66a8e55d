package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// periodPredicate es el único predicado de ventana de fechas: lo comparten el
// listado paginado y su query de conteo, así el total siempre coincide.
const periodPredicate = `t.created_at >= $1 AND t.created_at < $2`

// Create persiste la cabecera de una venta.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions
		(transaction_id, customer_id, total_amount, total_discount, final_amount, payment_method, change_due, customer_credit, is_reprinted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.CustomerID, tx.TotalAmount, tx.TotalDiscount, tx.FinalAmount,
		tx.PaymentMethod, tx.ChangeDue, tx.CustomerCredit, tx.IsReprinted, tx.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta (inmutable una vez escrita).
func (r *TransactionRepo) CreateItem(item *entity.TransactionItem) error {
	query := `
		INSERT INTO transaction_items
		(transaction_item_id, transaction_id, product_id, product_name, quantity, unit_price, item_total, item_discount, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.ItemTotal, item.ItemDiscount, item.TaxRate,
	)
	if err != nil {
		return fmt.Errorf("insert transaction item: %w", err)
	}
	return nil
}

// GetByID obtiene una venta con el nombre del cliente. Retorna nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.TransactionWithCustomer, error) {
	query := `
		SELECT t.transaction_id, t.customer_id, t.total_amount, t.total_discount, t.final_amount,
		       t.payment_method, t.change_due, t.customer_credit, t.is_reprinted, t.created_at,
		       c.name AS customer_name
		FROM transactions t
		LEFT JOIN customers c ON c.customer_id = t.customer_id
		WHERE t.transaction_id = $1`
	var tx entity.TransactionWithCustomer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&tx.ID, &tx.CustomerID, &tx.TotalAmount, &tx.TotalDiscount, &tx.FinalAmount,
		&tx.PaymentMethod, &tx.ChangeDue, &tx.CustomerCredit, &tx.IsReprinted, &tx.CreatedAt,
		&tx.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

// ListItems lista las líneas de una venta.
func (r *TransactionRepo) ListItems(transactionID string) ([]*entity.TransactionItem, error) {
	query := `
		SELECT transaction_item_id, transaction_id, product_id, product_name,
		       quantity, unit_price, item_total, item_discount, tax_rate
		FROM transaction_items
		WHERE transaction_id = $1`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionItem
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(
			&it.ID, &it.TransactionID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.ItemTotal, &it.ItemDiscount, &it.TaxRate,
		); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByPeriod lista ventas dentro de [from, to) con paginación, más recientes primero.
func (r *TransactionRepo) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.TransactionWithCustomer, error) {
	query := `
		SELECT t.transaction_id, t.customer_id, t.total_amount, t.total_discount, t.final_amount,
		       t.payment_method, t.change_due, t.customer_credit, t.is_reprinted, t.created_at,
		       c.name AS customer_name
		FROM transactions t
		LEFT JOIN customers c ON c.customer_id = t.customer_id
		WHERE ` + periodPredicate + `
		ORDER BY t.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionWithCustomer
	for rows.Next() {
		var tx entity.TransactionWithCustomer
		if err := rows.Scan(
			&tx.ID, &tx.CustomerID, &tx.TotalAmount, &tx.TotalDiscount, &tx.FinalAmount,
			&tx.PaymentMethod, &tx.ChangeDue, &tx.CustomerCredit, &tx.IsReprinted, &tx.CreatedAt,
			&tx.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

// CountByPeriod cuenta ventas dentro de [from, to) con el mismo predicado del listado.
func (r *TransactionRepo) CountByPeriod(from, to time.Time) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM transactions t WHERE `+periodPredicate, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return total, nil
}
