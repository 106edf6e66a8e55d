package sales_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// testLogger logger silencioso para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

// fakeProductRepo resuelve nombres desde un mapa en memoria.
type fakeProductRepo struct {
	names map[string]string
}

func (f *fakeProductRepo) List() ([]*entity.ProductWithRefs, error)  { return nil, nil }
func (f *fakeProductRepo) GetByID(string) (*entity.ProductWithRefs, error) { return nil, nil }
func (f *fakeProductRepo) Create(*entity.Product) error              { return nil }
func (f *fakeProductRepo) Delete(string) error                       { return nil }
func (f *fakeProductRepo) UpdatePartial(string, repository.ProductPatch) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetName(id string) (string, error) {
	name, ok := f.names[id]
	if !ok {
		return "", domain.ErrProductNotFound
	}
	return name, nil
}

// fakeTransactionRepo acumula cabeceras y líneas en memoria.
type fakeTransactionRepo struct {
	headers []*entity.Transaction
	items   []*entity.TransactionItem
	byID    map[string]*entity.TransactionWithCustomer
	period  []*entity.TransactionWithCustomer
}

func (f *fakeTransactionRepo) Create(tx *entity.Transaction) error {
	f.headers = append(f.headers, tx)
	return nil
}

func (f *fakeTransactionRepo) CreateItem(item *entity.TransactionItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeTransactionRepo) GetByID(id string) (*entity.TransactionWithCustomer, error) {
	return f.byID[id], nil
}

func (f *fakeTransactionRepo) ListItems(transactionID string) ([]*entity.TransactionItem, error) {
	var out []*entity.TransactionItem
	for _, it := range f.items {
		if it.TransactionID == transactionID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.TransactionWithCustomer, error) {
	if offset >= len(f.period) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.period) {
		end = len(f.period)
	}
	return f.period[offset:end], nil
}

func (f *fakeTransactionRepo) CountByPeriod(from, to time.Time) (int, error) {
	return len(f.period), nil
}

// fakeInventoryRepo acumula los descuentos de stock por producto.
type fakeInventoryRepo struct {
	decrements map[string]decimal.Decimal
}

func (f *fakeInventoryRepo) List() ([]*entity.InventoryWithProduct, error)  { return nil, nil }
func (f *fakeInventoryRepo) GetByProduct(string) (*entity.InventoryWithProduct, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) Upsert(*entity.InventoryItem) (*entity.InventoryItem, error) {
	return nil, nil
}
func (f *fakeInventoryRepo) CreateZero(string, string) error { return nil }
func (f *fakeInventoryRepo) DeleteByProduct(string) error    { return nil }

func (f *fakeInventoryRepo) DecrementStock(productID string, qty decimal.Decimal) error {
	if f.decrements == nil {
		f.decrements = make(map[string]decimal.Decimal)
	}
	f.decrements[productID] = f.decrements[productID].Add(qty)
	return nil
}

// fakeRunner invoca el callback con los fakes y registra si hubo commit.
type fakeRunner struct {
	products  *fakeProductRepo
	txns      *fakeTransactionRepo
	inventory *fakeInventoryRepo
	committed bool
}

func (r *fakeRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	txnRepo repository.TransactionRepository,
	invRepo repository.InventoryRepository,
) error) error {
	if err := fn(r.products, r.txns, r.inventory); err != nil {
		return err
	}
	r.committed = true
	return nil
}
