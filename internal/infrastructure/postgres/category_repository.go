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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List lista las categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id, name, gst_rate FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.GSTRate); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste una categoría. El nombre es único.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (category_id, name, gst_rate) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.GSTRate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// UpdatePartial aplica un merge estilo COALESCE con los campos presentes del patch.
func (r *CategoryRepo) UpdatePartial(id string, patch repository.CategoryPatch) (*entity.Category, error) {
	query := `
		UPDATE categories
		SET name = COALESCE($2, name),
		    gst_rate = COALESCE($3, gst_rate)
		WHERE category_id = $1
		RETURNING category_id, name, gst_rate`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id, patch.Name, patch.GSTRate).
		Scan(&c.ID, &c.Name, &c.GSTRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

// Delete elimina una categoría. ErrNotFound si no existe; ErrForeignKey si está en uso.
func (r *CategoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
