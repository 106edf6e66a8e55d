package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newCheckoutFixture(names map[string]string) (*sales.CreateTransactionUseCase, *fakeRunner) {
	runner := &fakeRunner{
		products:  &fakeProductRepo{names: names},
		txns:      &fakeTransactionRepo{},
		inventory: &fakeInventoryRepo{},
	}
	return sales.NewCreateTransactionUseCase(runner, testLogger()), runner
}

func TestCreateTransaction_PersisteCabeceraLineasYDescuentos(t *testing.T) {
	uc, runner := newCheckoutFixture(map[string]string{
		"p1": "Arroz 1kg",
		"p2": "Azúcar 500g",
	})

	in := dto.CreateTransactionRequest{
		TotalAmount:   dec("120.00"),
		TotalDiscount: dec("5.00"),
		FinalAmount:   dec("115.00"),
		PaymentMethod: entity.PaymentCash,
		Items: []dto.TransactionItemRequest{
			{ProductID: "p1", Quantity: dec("2"), UnitPrice: dec("40.00"), ItemTotal: dec("80.00")},
			{ProductID: "p2", Quantity: dec("1.5"), UnitPrice: dec("26.67"), ItemTotal: dec("40.00")},
		},
	}

	out, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, runner.committed, "la venta debe confirmarse")
	require.Len(t, runner.txns.headers, 1, "una sola cabecera")
	require.Len(t, runner.txns.items, 2, "una línea por item")

	// Los totales se guardan tal cual llegan, sin recalcular.
	header := runner.txns.headers[0]
	assert.True(t, header.FinalAmount.Equal(dec("115.00")))
	assert.True(t, header.TotalDiscount.Equal(dec("5.00")))

	// El nombre del producto queda congelado en la línea.
	assert.Equal(t, "Arroz 1kg", runner.txns.items[0].ProductName)
	assert.Equal(t, "Azúcar 500g", runner.txns.items[1].ProductName)
	assert.Equal(t, header.ID, runner.txns.items[0].TransactionID)

	// El stock se descuenta exactamente por la cantidad vendida.
	assert.True(t, runner.inventory.decrements["p1"].Equal(dec("2")))
	assert.True(t, runner.inventory.decrements["p2"].Equal(dec("1.5")))

	assert.Len(t, out.Items, 2)
	assert.Equal(t, header.ID, out.TransactionID)
}

func TestCreateTransaction_ProductoInexistente_RevierteTodo(t *testing.T) {
	uc, runner := newCheckoutFixture(map[string]string{"p1": "Arroz 1kg"})

	in := dto.CreateTransactionRequest{
		FinalAmount:   dec("50.00"),
		PaymentMethod: entity.PaymentUPI,
		Items: []dto.TransactionItemRequest{
			{ProductID: "p1", Quantity: dec("1")},
			{ProductID: "fantasma", Quantity: dec("3")},
		},
	}

	_, err := uc.Execute(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProductNotFound),
		"un producto desconocido debe fallar con producto no encontrado")
	assert.False(t, runner.committed,
		"si falla una línea no debe confirmarse nada de la venta")
}

func TestCreateTransaction_SinLineas_Rechazada(t *testing.T) {
	uc, runner := newCheckoutFixture(nil)

	_, err := uc.Execute(context.Background(), dto.CreateTransactionRequest{
		PaymentMethod: entity.PaymentCash,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.False(t, runner.committed)
}

func TestCreateTransaction_MetodoPagoDesconocido_Rechazado(t *testing.T) {
	uc, _ := newCheckoutFixture(map[string]string{"p1": "Arroz 1kg"})

	_, err := uc.Execute(context.Background(), dto.CreateTransactionRequest{
		PaymentMethod: "cheque",
		Items:         []dto.TransactionItemRequest{{ProductID: "p1", Quantity: dec("1")}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
