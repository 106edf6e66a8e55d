package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

var _ repository.BillerRepository = (*BillerRepo)(nil)

// BillerRepo implementación de BillerRepository sobre PostgreSQL.
type BillerRepo struct {
	q Querier
}

// NewBillerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillerRepository(q Querier) *BillerRepo {
	return &BillerRepo{q: q}
}

// FindByUsername busca un biller por username. Retorna nil si no existe.
func (r *BillerRepo) FindByUsername(username string) (*entity.Biller, error) {
	query := `
		SELECT biller_id, username, password_hash, full_name, created_at
		FROM billers WHERE username = $1`
	var b entity.Biller
	err := r.q.QueryRow(context.Background(), query, username).Scan(
		&b.ID, &b.Username, &b.PasswordHash, &b.FullName, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get biller: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza un biller por username (lo usa cmd/seed_biller).
func (r *BillerRepo) Upsert(biller *entity.Biller) (*entity.Biller, error) {
	query := `
		INSERT INTO billers (biller_id, username, password_hash, full_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			full_name     = EXCLUDED.full_name
		RETURNING biller_id, username, password_hash, full_name, created_at`
	var b entity.Biller
	err := r.q.QueryRow(context.Background(), query,
		biller.ID, biller.Username, biller.PasswordHash, biller.FullName,
	).Scan(&b.ID, &b.Username, &b.PasswordHash, &b.FullName, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert biller: %w", err)
	}
	return &b, nil
}
