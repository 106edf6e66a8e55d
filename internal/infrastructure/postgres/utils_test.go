package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "categories_name_key"}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insertar categoría: %w", pgErr)),
		"debe detectarse también envuelto")
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "products_category_id_fkey"}

	assert.True(t, isForeignKeyViolation(pgErr))
	assert.True(t, isForeignKeyViolation(fmt.Errorf("eliminar categoría: %w", pgErr)))
	assert.False(t, isForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
}
