package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el punto de venta.
const (
	PaymentCash   = "cash"
	PaymentUPI    = "upi"
	PaymentCredit = "credit"
)

// Transaction cabecera de una venta. Los totales vienen calculados por el
// cliente biller (no se recalculan en el servidor).
type Transaction struct {
	ID             string
	CustomerID     *string
	TotalAmount    decimal.Decimal
	TotalDiscount  decimal.Decimal
	FinalAmount    decimal.Decimal
	PaymentMethod  string
	ChangeDue      decimal.Decimal
	CustomerCredit decimal.Decimal
	IsReprinted    bool
	CreatedAt      time.Time
}

// TransactionItem línea de una venta. Inmutable una vez escrita; ProductName
// queda denormalizado para que el histórico sobreviva a cambios del catálogo.
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	ProductName   string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	ItemTotal     decimal.Decimal
	ItemDiscount  decimal.Decimal
	TaxRate       decimal.Decimal
}

// TransactionWithCustomer cabecera con el nombre del cliente para listados y exportes.
type TransactionWithCustomer struct {
	Transaction
	CustomerName *string
}
