package sales

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// BulkSaleUseCase registra la venta agregada de un día pasado: una sola
// cabecera sin líneas ni movimiento de inventario, para tiendas que migran
// su histórico en papel.
type BulkSaleUseCase struct {
	txnRepo repository.TransactionRepository
	log     *logger.Logger
}

// NewBulkSaleUseCase construye el caso de uso.
func NewBulkSaleUseCase(txnRepo repository.TransactionRepository, log *logger.Logger) *BulkSaleUseCase {
	return &BulkSaleUseCase{txnRepo: txnRepo, log: log}
}

// Execute crea la venta agregada con created_at anclado al día indicado.
func (uc *BulkSaleUseCase) Execute(in dto.BulkSaleRequest) (*dto.TransactionResponse, error) {
	day, err := time.ParseInLocation(dateLayout, in.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, in.Date)
	}
	today := time.Now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if !day.Before(startOfToday) {
		return nil, fmt.Errorf("%w: la venta agregada solo aplica a días pasados", domain.ErrInvalidInput)
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentUPI, entity.PaymentCredit:
	default:
		return nil, fmt.Errorf("%w: método de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	if in.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}

	txn := &entity.Transaction{
		ID:            uuid.NewString(),
		TotalAmount:   in.TotalAmount,
		FinalAmount:   in.TotalAmount,
		PaymentMethod: in.PaymentMethod,
		// Mediodía del día reportado: cae dentro de la ventana diaria sin
		// depender del huso horario del servidor.
		CreatedAt: day.Add(12 * time.Hour),
	}
	if err := uc.txnRepo.Create(txn); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", txn.ID).
		Str("date", in.Date).
		Msg("Venta agregada registrada")
	return toTransactionResponse(&entity.TransactionWithCustomer{Transaction: *txn}), nil
}
