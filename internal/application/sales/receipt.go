package sales

import (
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// ReceiptUseCase genera el comprobante PDF de una venta ya registrada.
type ReceiptUseCase struct {
	txnRepo   repository.TransactionRepository
	generator ReceiptGenerator
	log       *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(txnRepo repository.TransactionRepository, generator ReceiptGenerator, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{txnRepo: txnRepo, generator: generator, log: log}
}

// Execute retorna los bytes del PDF del comprobante.
func (uc *ReceiptUseCase) Execute(transactionID string) ([]byte, error) {
	txn, err := uc.txnRepo.GetByID(transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.txnRepo.ListItems(transactionID)
	if err != nil {
		return nil, err
	}
	pdf, err := uc.generator.Generate(txn, items)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("transaction_id", transactionID).Msg("Comprobante PDF generado")
	return pdf, nil
}
