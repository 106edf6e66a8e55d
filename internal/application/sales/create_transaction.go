package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// CreateTransactionUseCase registra una venta del punto de venta: cabecera,
// líneas con el nombre del producto congelado y descuento de existencias,
// todo dentro de una sola transacción de base de datos.
type CreateTransactionUseCase struct {
	runner TxRunner
	log    *logger.Logger
}

// NewCreateTransactionUseCase construye el caso de uso.
func NewCreateTransactionUseCase(runner TxRunner, log *logger.Logger) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{runner: runner, log: log}
}

// Execute persiste la venta. Los totales llegan calculados por el cliente y se
// guardan tal cual; si algún producto no existe la venta completa se revierte.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta requiere al menos una línea", domain.ErrInvalidInput)
	}
	switch in.PaymentMethod {
	case entity.PaymentCash, entity.PaymentUPI, entity.PaymentCredit:
	default:
		return nil, fmt.Errorf("%w: método de pago desconocido %q", domain.ErrInvalidInput, in.PaymentMethod)
	}

	txn := &entity.Transaction{
		ID:             uuid.NewString(),
		CustomerID:     in.CustomerID,
		TotalAmount:    in.TotalAmount,
		TotalDiscount:  in.TotalDiscount,
		FinalAmount:    in.FinalAmount,
		PaymentMethod:  in.PaymentMethod,
		ChangeDue:      in.ChangeDue,
		CustomerCredit: in.CustomerCredit,
		IsReprinted:    in.IsReprinted,
		CreatedAt:      time.Now(),
	}

	items := make([]dto.TransactionItemResponse, 0, len(in.Items))
	err := uc.runner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		txnRepo repository.TransactionRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		for _, line := range in.Items {
			name, err := productRepo.GetName(line.ProductID)
			if err != nil {
				return err
			}
			item := &entity.TransactionItem{
				ID:            uuid.NewString(),
				TransactionID: txn.ID,
				ProductID:     line.ProductID,
				ProductName:   name,
				Quantity:      line.Quantity,
				UnitPrice:     line.UnitPrice,
				ItemTotal:     line.ItemTotal,
				ItemDiscount:  line.ItemDiscount,
				TaxRate:       line.TaxRate,
			}
			if err := txnRepo.CreateItem(item); err != nil {
				return err
			}
			if err := invRepo.DecrementStock(line.ProductID, line.Quantity); err != nil {
				return err
			}
			items = append(items, dto.TransactionItemResponse{
				ID:           item.ID,
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				ItemTotal:    item.ItemTotal,
				ItemDiscount: item.ItemDiscount,
				TaxRate:      item.TaxRate,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", txn.ID).
		Int("items", len(items)).
		Str("payment_method", txn.PaymentMethod).
		Msg("Venta registrada")

	resp := toTransactionResponse(&entity.TransactionWithCustomer{Transaction: *txn})
	resp.Items = items
	return resp, nil
}

// toTransactionResponse mapea la cabecera al DTO de salida.
func toTransactionResponse(t *entity.TransactionWithCustomer) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		TransactionID:  t.ID,
		CustomerID:     t.CustomerID,
		CustomerName:   t.CustomerName,
		TotalAmount:    t.TotalAmount,
		TotalDiscount:  t.TotalDiscount,
		FinalAmount:    t.FinalAmount,
		PaymentMethod:  t.PaymentMethod,
		ChangeDue:      t.ChangeDue,
		CustomerCredit: t.CustomerCredit,
		IsReprinted:    t.IsReprinted,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
}
