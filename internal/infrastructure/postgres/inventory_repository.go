package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// List lista las existencias con producto y unidad, ordenadas por nombre de producto.
func (r *InventoryRepo) List() ([]*entity.InventoryWithProduct, error) {
	query := `
		SELECT i.inventory_id, i.product_id, i.stock_quantity, i.min_stock_level,
		       i.batch_number, i.expiry_date, i.last_updated_at,
		       p.name, u.unit_name
		FROM inventory i
		JOIN products p ON p.product_id = i.product_id
		LEFT JOIN units u ON u.unit_id = p.unit_id
		ORDER BY p.name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryWithProduct
	for rows.Next() {
		var it entity.InventoryWithProduct
		if err := rows.Scan(
			&it.InventoryID, &it.ProductID, &it.StockQuantity, &it.MinStockLevel,
			&it.BatchNumber, &it.ExpiryDate, &it.LastUpdatedAt,
			&it.ProductName, &it.UnitName,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByProduct obtiene la fila de existencias de un producto. Retorna nil si no existe.
func (r *InventoryRepo) GetByProduct(productID string) (*entity.InventoryWithProduct, error) {
	query := `
		SELECT i.inventory_id, i.product_id, i.stock_quantity, i.min_stock_level,
		       i.batch_number, i.expiry_date, i.last_updated_at,
		       p.name, u.unit_name
		FROM inventory i
		JOIN products p ON p.product_id = i.product_id
		LEFT JOIN units u ON u.unit_id = p.unit_id
		WHERE i.product_id = $1`
	var it entity.InventoryWithProduct
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&it.InventoryID, &it.ProductID, &it.StockQuantity, &it.MinStockLevel,
		&it.BatchNumber, &it.ExpiryDate, &it.LastUpdatedAt,
		&it.ProductName, &it.UnitName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &it, nil
}

// Upsert inserta o reemplaza la fila de existencias por product_id. Con payload
// idéntico el resultado es la misma fila: no se duplican existencias.
func (r *InventoryRepo) Upsert(item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		INSERT INTO inventory (inventory_id, product_id, stock_quantity, min_stock_level, batch_number, expiry_date, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (product_id)
		DO UPDATE SET
			stock_quantity  = EXCLUDED.stock_quantity,
			min_stock_level = EXCLUDED.min_stock_level,
			batch_number    = EXCLUDED.batch_number,
			expiry_date     = EXCLUDED.expiry_date,
			last_updated_at = NOW()
		RETURNING inventory_id, product_id, stock_quantity, min_stock_level, batch_number, expiry_date, last_updated_at`
	var out entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query,
		item.InventoryID, item.ProductID, item.StockQuantity, item.MinStockLevel,
		item.BatchNumber, item.ExpiryDate,
	).Scan(
		&out.InventoryID, &out.ProductID, &out.StockQuantity, &out.MinStockLevel,
		&out.BatchNumber, &out.ExpiryDate, &out.LastUpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrForeignKey
		}
		return nil, fmt.Errorf("upsert inventory: %w", err)
	}
	return &out, nil
}

// CreateZero crea la fila de existencias en cero para un producto recién creado.
func (r *InventoryRepo) CreateZero(inventoryID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO inventory (inventory_id, product_id, stock_quantity, min_stock_level)
		 VALUES ($1, $2, 0, 0)`,
		inventoryID, productID,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// DecrementStock descuenta qty del stock del producto. Sin piso: el stock puede
// quedar negativo; la serialización la da el row lock del UPDATE.
func (r *InventoryRepo) DecrementStock(productID string, qty decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventory SET stock_quantity = stock_quantity - $1, last_updated_at = NOW()
		 WHERE product_id = $2`,
		qty, productID,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

// DeleteByProduct elimina la fila de existencias de un producto.
func (r *InventoryRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}
