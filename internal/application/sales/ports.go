package sales

import (
	"context"

	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
)

// TxRunner ejecuta el callback del checkout dentro de una transacción de base
// de datos: si fn retorna error, nada de la venta queda persistido.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// ReceiptGenerator produce el PDF del comprobante de una venta.
type ReceiptGenerator interface {
	Generate(txn *entity.TransactionWithCustomer, items []*entity.TransactionItem) ([]byte, error)
}

// SheetWriter produce el exporte XLSX de un rango de ventas.
type SheetWriter interface {
	WriteTransactions(rows []*entity.TransactionWithCustomer) ([]byte, error)
}
