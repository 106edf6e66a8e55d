// Package report genera exportes XLSX del histórico de ventas.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/domain/entity"
)

// XLSXWriter implementa sales.SheetWriter usando excelize.
type XLSXWriter struct{}

var _ sales.SheetWriter = (*XLSXWriter)(nil)

// NewXLSXWriter construye el escritor.
func NewXLSXWriter() *XLSXWriter {
	return &XLSXWriter{}
}

// WriteTransactions genera el libro con una fila por venta. Un rango vacío
// produce un libro con solo la fila de encabezados.
func (w *XLSXWriter) WriteTransactions(rows []*entity.TransactionWithCustomer) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"Transaction ID", "Customer Name", "Date", "Payment Method", "Final Amount"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: escribir encabezado: %w", err)
	}

	for i, t := range rows {
		name := "Walk-in"
		if t.CustomerName != nil {
			name = *t.CustomerName
		}
		excelRow := []interface{}{
			t.ID,
			name,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			t.PaymentMethod,
			t.FinalAmount.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda de fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: escribir fila %d: %w", i+2, err)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "E", 20)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
