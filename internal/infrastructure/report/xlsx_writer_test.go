package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/infrastructure/report"
)

func TestWriteTransactions_FilasYWalkIn(t *testing.T) {
	name := "Ramesh Kumar"
	rows := []*entity.TransactionWithCustomer{
		{
			Transaction: entity.Transaction{
				ID:            "t1",
				PaymentMethod: "cash",
				FinalAmount:   decimal.RequireFromString("115.50"),
				CreatedAt:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			},
			CustomerName: &name,
		},
		{
			Transaction: entity.Transaction{
				ID:            "t2",
				PaymentMethod: "upi",
				FinalAmount:   decimal.RequireFromString("40.00"),
				CreatedAt:     time.Date(2025, 3, 15, 18, 5, 0, 0, time.UTC),
			},
		},
	}

	out, err := report.NewXLSXWriter().WriteTransactions(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 3, "encabezado más una fila por venta")

	assert.Equal(t,
		[]string{"Transaction ID", "Customer Name", "Date", "Payment Method", "Final Amount"},
		got[0])
	assert.Equal(t, "t1", got[1][0])
	assert.Equal(t, "Ramesh Kumar", got[1][1])
	assert.Equal(t, "2025-03-15 10:30:00", got[1][2])
	assert.Equal(t, "Walk-in", got[2][1], "venta sin cliente exporta Walk-in")
}

func TestWriteTransactions_RangoVacioSoloEncabezado(t *testing.T) {
	out, err := report.NewXLSXWriter().WriteTransactions(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	got, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Transaction ID", got[0][0])
}
