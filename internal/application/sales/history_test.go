package sales_test

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func sampleRows() []*entity.TransactionWithCustomer {
	return []*entity.TransactionWithCustomer{
		{
			Transaction: entity.Transaction{
				ID:            "t1",
				FinalAmount:   dec("115.5"),
				PaymentMethod: entity.PaymentCash,
				CreatedAt:     time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC),
			},
			CustomerName: strPtr("Ramesh"),
		},
		{
			Transaction: entity.Transaction{
				ID:            "t2",
				FinalAmount:   dec("40"),
				PaymentMethod: entity.PaymentUPI,
				CreatedAt:     time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestExportCSV_FormatoYFilaWalkIn(t *testing.T) {
	repo := &fakeTransactionRepo{period: sampleRows()}
	uc := sales.NewTransactionHistoryUseCase(repo, nil, testLogger())

	out, err := uc.ExportCSV("day", "", "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "encabezado más dos filas")

	assert.Equal(t, []string{"Transaction ID", "Customer Name", "Date", "Payment Method", "Final Amount"}, records[0])
	assert.Equal(t, []string{"t1", "Ramesh", "2025-03-15 10:30:00", "cash", "115.50"}, records[1])
	assert.Equal(t, "Walk-in", records[2][1],
		"una venta sin cliente se exporta como Walk-in")
	assert.Equal(t, "40.00", records[2][4], "los montos van con dos decimales")
}

func TestExportCSV_RangoVacioSoloEncabezado(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := sales.NewTransactionHistoryUseCase(repo, nil, testLogger())

	out, err := uc.ExportCSV("month", "", "")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "sin ventas solo va la fila de encabezados")
}

func TestList_TotalEsDeLaVentanaCompleta(t *testing.T) {
	repo := &fakeTransactionRepo{period: sampleRows()}
	uc := sales.NewTransactionHistoryUseCase(repo, nil, testLogger())

	out, err := uc.List("day", "", "", 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, out.Total, "el total cubre toda la ventana, no la página")
	assert.Len(t, out.Data, 1, "la página respeta el limit")
	assert.Equal(t, "t1", out.Data[0].TransactionID)
}

func TestList_FiltroInvalidoPropagaError(t *testing.T) {
	uc := sales.NewTransactionHistoryUseCase(&fakeTransactionRepo{}, nil, testLogger())

	_, err := uc.List("quincena", "", "", 1, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGet_VentaInexistenteRetornaNotFound(t *testing.T) {
	uc := sales.NewTransactionHistoryUseCase(&fakeTransactionRepo{byID: map[string]*entity.TransactionWithCustomer{}}, nil, testLogger())

	_, err := uc.Get("no-existe")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Venta agregada (bulk)
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkSale_CreaCabeceraAncladaAlDia(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := sales.NewBulkSaleUseCase(repo, testLogger())

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	out, err := uc.Execute(dto.BulkSaleRequest{
		Date:          yesterday,
		TotalAmount:   dec("2500"),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	require.Len(t, repo.headers, 1)

	header := repo.headers[0]
	assert.Equal(t, yesterday, header.CreatedAt.Format("2006-01-02"),
		"la venta agregada queda fechada en el día reportado")
	assert.True(t, header.FinalAmount.Equal(dec("2500")))
	assert.Nil(t, header.CustomerID, "la venta agregada no lleva cliente")
	assert.NotEmpty(t, out.TransactionID)
}

func TestBulkSale_DiaActualOFuturo_Rechazado(t *testing.T) {
	uc := sales.NewBulkSaleUseCase(&fakeTransactionRepo{}, testLogger())

	_, err := uc.Execute(dto.BulkSaleRequest{
		Date:          time.Now().Format("2006-01-02"),
		TotalAmount:   dec("100"),
		PaymentMethod: entity.PaymentCash,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput),
		"solo se aceptan días pasados")
}

func TestBulkSale_MontoNoPositivo_Rechazado(t *testing.T) {
	uc := sales.NewBulkSaleUseCase(&fakeTransactionRepo{}, testLogger())

	_, err := uc.Execute(dto.BulkSaleRequest{
		Date:          "2025-01-10",
		TotalAmount:   dec("0"),
		PaymentMethod: entity.PaymentCash,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
