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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productWithRefsColumns = `
	p.product_id, p.name, p.description, p.category_id, c.name AS category_name,
	p.unit_id, u.unit_name, p.cost_price, p.selling_price, p.mrp,
	p.is_weighted, p.weight, p.weight_unit_id, p.created_at`

// List lista el catálogo con nombres de categoría/unidad y stock actual.
func (r *ProductRepo) List() ([]*entity.ProductWithRefs, error) {
	query := `
		SELECT` + productWithRefsColumns + `,
		       COALESCE(i.stock_quantity, 0) AS stock_quantity
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		LEFT JOIN units u ON u.unit_id = p.unit_id
		LEFT JOIN inventory i ON i.product_id = p.product_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductWithRefs
	for rows.Next() {
		var p entity.ProductWithRefs
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategoryName,
			&p.UnitID, &p.UnitName, &p.CostPrice, &p.SellingPrice, &p.MRP,
			&p.IsWeighted, &p.Weight, &p.WeightUnitID, &p.CreatedAt,
			&p.StockQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto con sus referencias. Retorna nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.ProductWithRefs, error) {
	query := `
		SELECT` + productWithRefsColumns + `,
		       COALESCE(i.stock_quantity, 0) AS stock_quantity
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		LEFT JOIN units u ON u.unit_id = p.unit_id
		LEFT JOIN inventory i ON i.product_id = p.product_id
		WHERE p.product_id = $1`
	var p entity.ProductWithRefs
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategoryName,
		&p.UnitID, &p.UnitName, &p.CostPrice, &p.SellingPrice, &p.MRP,
		&p.IsWeighted, &p.Weight, &p.WeightUnitID, &p.CreatedAt,
		&p.StockQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetName resuelve el nombre actual del producto para denormalizarlo en la línea
// de venta. Retorna domain.ErrProductNotFound si el id no existe.
func (r *ProductRepo) GetName(id string) (string, error) {
	var name string
	err := r.q.QueryRow(context.Background(),
		`SELECT name FROM products WHERE product_id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrProductNotFound
		}
		return "", fmt.Errorf("get product name: %w", err)
	}
	return name, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products
		(product_id, name, description, category_id, unit_id, cost_price, selling_price, mrp, is_weighted, weight, weight_unit_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.CategoryID, product.UnitID,
		product.CostPrice, product.SellingPrice, product.MRP,
		product.IsWeighted, product.Weight, product.WeightUnitID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// UpdatePartial aplica un merge estilo COALESCE con los campos presentes del patch.
func (r *ProductRepo) UpdatePartial(id string, patch repository.ProductPatch) (*entity.Product, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    category_id = COALESCE($4, category_id),
		    unit_id = COALESCE($5, unit_id),
		    cost_price = COALESCE($6, cost_price),
		    selling_price = COALESCE($7, selling_price),
		    mrp = COALESCE($8, mrp),
		    is_weighted = COALESCE($9, is_weighted),
		    weight = COALESCE($10, weight),
		    weight_unit_id = COALESCE($11, weight_unit_id)
		WHERE product_id = $1
		RETURNING product_id, name, description, category_id, unit_id, cost_price, selling_price, mrp, is_weighted, weight, weight_unit_id, created_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id,
		patch.Name, patch.Description, patch.CategoryID, patch.UnitID,
		patch.CostPrice, patch.SellingPrice, patch.MRP,
		patch.IsWeighted, patch.Weight, patch.WeightUnitID,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.UnitID,
		&p.CostPrice, &p.SellingPrice, &p.MRP,
		&p.IsWeighted, &p.Weight, &p.WeightUnitID, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrForeignKey
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por ID. ErrNotFound si no existe.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
