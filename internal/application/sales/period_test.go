package sales_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/domain"
)

// now fijo para ventanas deterministas: sábado 15 de marzo de 2025, 14:30.
var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func TestResolvePeriod_Day(t *testing.T) {
	p, err := sales.ResolvePeriod("day", "", "", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), p.To)
}

func TestResolvePeriod_FiltroVacioEsDay(t *testing.T) {
	p, err := sales.ResolvePeriod("", "", "", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), p.From)
}

func TestResolvePeriod_Month(t *testing.T) {
	p, err := sales.ResolvePeriod("month", "", "", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), p.To)
}

func TestResolvePeriod_Year(t *testing.T) {
	p, err := sales.ResolvePeriod("year", "", "", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.From)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), p.To)
}

func TestResolvePeriod_CustomIncluyeElUltimoDia(t *testing.T) {
	p, err := sales.ResolvePeriod("custom", "2025-03-01", "2025-03-10", testNow)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), p.From)
	// endDate inclusivo: la ventana cierra al inicio del día siguiente.
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), p.To)
}

func TestResolvePeriod_CustomSinFechas_Rechazado(t *testing.T) {
	_, err := sales.ResolvePeriod("custom", "", "2025-03-10", testNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResolvePeriod_CustomFechaInvalida_Rechazada(t *testing.T) {
	_, err := sales.ResolvePeriod("custom", "01/03/2025", "2025-03-10", testNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResolvePeriod_CustomEndAntesDeStart_Rechazado(t *testing.T) {
	_, err := sales.ResolvePeriod("custom", "2025-03-10", "2025-03-01", testNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestResolvePeriod_FiltroDesconocido_Rechazado(t *testing.T) {
	_, err := sales.ResolvePeriod("week", "", "", testNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
