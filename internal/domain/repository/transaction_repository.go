package repository

import (
	"time"

	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para ventas.
// ListByPeriod y CountByPeriod comparten el mismo predicado de fechas:
// el total de la paginación siempre corresponde a la ventana listada.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	CreateItem(item *entity.TransactionItem) error
	GetByID(id string) (*entity.TransactionWithCustomer, error)
	ListItems(transactionID string) ([]*entity.TransactionItem, error)
	ListByPeriod(from, to time.Time, limit, offset int) ([]*entity.TransactionWithCustomer, error)
	CountByPeriod(from, to time.Time) (int, error)
}
