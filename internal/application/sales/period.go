package sales

import (
	"fmt"
	"time"

	"github.com/kiranapos/pos-api/internal/domain"
)

// dateLayout formato de fechas aceptado en los filtros custom.
const dateLayout = "2006-01-02"

// Period ventana semiabierta [From, To) sobre created_at.
type Period struct {
	From time.Time
	To   time.Time
}

// ResolvePeriod traduce el filtro de la query a una ventana de tiempo.
// Filtros soportados: day (defecto), month, year y custom con start/end
// inclusive. El mismo Period alimenta el listado y el conteo, así el total
// de la paginación siempre corresponde a la ventana listada.
func ResolvePeriod(filter, startDate, endDate string, now time.Time) (Period, error) {
	switch filter {
	case "", "day":
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return Period{From: from, To: from.AddDate(0, 0, 1)}, nil
	case "month":
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Period{From: from, To: from.AddDate(0, 1, 0)}, nil
	case "year":
		from := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return Period{From: from, To: from.AddDate(1, 0, 0)}, nil
	case "custom":
		if startDate == "" || endDate == "" {
			return Period{}, fmt.Errorf("%w: el filtro custom requiere startDate y endDate", domain.ErrInvalidInput)
		}
		from, err := time.ParseInLocation(dateLayout, startDate, now.Location())
		if err != nil {
			return Period{}, fmt.Errorf("%w: startDate inválida %q", domain.ErrInvalidInput, startDate)
		}
		end, err := time.ParseInLocation(dateLayout, endDate, now.Location())
		if err != nil {
			return Period{}, fmt.Errorf("%w: endDate inválida %q", domain.ErrInvalidInput, endDate)
		}
		if end.Before(from) {
			return Period{}, fmt.Errorf("%w: endDate anterior a startDate", domain.ErrInvalidInput)
		}
		// endDate es inclusivo: la ventana cierra al inicio del día siguiente.
		return Period{From: from, To: end.AddDate(0, 0, 1)}, nil
	default:
		return Period{}, fmt.Errorf("%w: filtro desconocido %q", domain.ErrInvalidInput, filter)
	}
}
