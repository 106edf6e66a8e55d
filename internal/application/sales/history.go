package sales

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/domain"
	"github.com/kiranapos/pos-api/internal/domain/entity"
	"github.com/kiranapos/pos-api/internal/domain/repository"
	"github.com/kiranapos/pos-api/pkg/logger"
)

// walkInName nombre mostrado cuando la venta no tiene cliente asociado.
const walkInName = "Walk-in"

// TransactionHistoryUseCase consultas y exportes sobre el histórico de ventas.
type TransactionHistoryUseCase struct {
	txnRepo repository.TransactionRepository
	sheets  SheetWriter
	log     *logger.Logger
}

// NewTransactionHistoryUseCase construye el caso de uso.
func NewTransactionHistoryUseCase(txnRepo repository.TransactionRepository, sheets SheetWriter, log *logger.Logger) *TransactionHistoryUseCase {
	return &TransactionHistoryUseCase{txnRepo: txnRepo, sheets: sheets, log: log}
}

// List pagina las ventas de la ventana pedida. El total corresponde a la
// ventana completa, no a la página.
func (uc *TransactionHistoryUseCase) List(filter, startDate, endDate string, page, limit int) (*dto.ListTransactionsResponse, error) {
	period, err := ResolvePeriod(filter, startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := uc.txnRepo.CountByPeriod(period.From, period.To)
	if err != nil {
		return nil, err
	}
	rows, err := uc.txnRepo.ListByPeriod(period.From, period.To, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	data := make([]dto.TransactionResponse, 0, len(rows))
	for _, row := range rows {
		data = append(data, *toTransactionResponse(row))
	}
	return &dto.ListTransactionsResponse{Data: data, Total: total}, nil
}

// Get retorna una venta con sus líneas.
func (uc *TransactionHistoryUseCase) Get(id string) (*dto.TransactionResponse, error) {
	txn, err := uc.txnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.txnRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	for _, it := range items {
		resp.Items = append(resp.Items, dto.TransactionItemResponse{
			ID:           it.ID,
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			ItemTotal:    it.ItemTotal,
			ItemDiscount: it.ItemDiscount,
			TaxRate:      it.TaxRate,
		})
	}
	return resp, nil
}

// collectPeriod trae todas las ventas de la ventana para un exporte.
func (uc *TransactionHistoryUseCase) collectPeriod(filter, startDate, endDate string) ([]*entity.TransactionWithCustomer, error) {
	period, err := ResolvePeriod(filter, startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}
	total, err := uc.txnRepo.CountByPeriod(period.From, period.To)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}
	return uc.txnRepo.ListByPeriod(period.From, period.To, total, 0)
}

// ExportCSV genera el CSV del rango pedido. Un rango vacío produce un
// archivo con solo la fila de encabezados.
func (uc *TransactionHistoryUseCase) ExportCSV(filter, startDate, endDate string) ([]byte, error) {
	rows, err := uc.collectPeriod(filter, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Transaction ID", "Customer Name", "Date", "Payment Method", "Final Amount"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range rows {
		name := walkInName
		if t.CustomerName != nil {
			name = *t.CustomerName
		}
		record := []string{
			t.ID,
			name,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			t.PaymentMethod,
			t.FinalAmount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	uc.log.Debug().Int("rows", len(rows)).Msg("Exporte CSV generado")
	return buf.Bytes(), nil
}

// ExportXLSX genera el libro XLSX del rango pedido.
func (uc *TransactionHistoryUseCase) ExportXLSX(filter, startDate, endDate string) ([]byte, error) {
	rows, err := uc.collectPeriod(filter, startDate, endDate)
	if err != nil {
		return nil, err
	}
	out, err := uc.sheets.WriteTransactions(rows)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("rows", len(rows)).Msg("Exporte XLSX generado")
	return out, nil
}
