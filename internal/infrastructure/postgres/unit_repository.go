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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// List lista las unidades ordenadas por nombre.
func (r *UnitRepo) List() ([]*entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT unit_id, unit_name, conversion_factor FROM units ORDER BY unit_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.UnitName, &u.ConversionFactor); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Create persiste una unidad. El nombre es único.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO units (unit_id, unit_name, conversion_factor) VALUES ($1, $2, $3)`,
		unit.ID, unit.UnitName, unit.ConversionFactor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// UpdatePartial aplica un merge estilo COALESCE con los campos presentes del patch.
func (r *UnitRepo) UpdatePartial(id string, patch repository.UnitPatch) (*entity.Unit, error) {
	query := `
		UPDATE units
		SET unit_name = COALESCE($2, unit_name),
		    conversion_factor = COALESCE($3, conversion_factor)
		WHERE unit_id = $1
		RETURNING unit_id, unit_name, conversion_factor`
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, id, patch.UnitName, patch.ConversionFactor).
		Scan(&u.ID, &u.UnitName, &u.ConversionFactor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update unit: %w", err)
	}
	return &u, nil
}

// Delete elimina una unidad. ErrNotFound si no existe; ErrForeignKey si está en uso.
func (r *UnitRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM units WHERE unit_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrForeignKey
		}
		return fmt.Errorf("delete unit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
