package dto

import "github.com/shopspring/decimal"

// TransactionItemRequest línea de venta tal como la envía el punto de venta.
type TransactionItemRequest struct {
	ProductID    string          `json:"product_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ItemTotal    decimal.Decimal `json:"item_total"`
	ItemDiscount decimal.Decimal `json:"item_discount"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
}

// CreateTransactionRequest venta completa: cabecera más líneas.
// Los totales vienen calculados por el cliente y se persisten tal cual.
type CreateTransactionRequest struct {
	CustomerID     *string                  `json:"customer_id"`
	TotalAmount    decimal.Decimal          `json:"total_amount"`
	TotalDiscount  decimal.Decimal          `json:"total_discount"`
	FinalAmount    decimal.Decimal          `json:"final_amount"`
	PaymentMethod  string                   `json:"payment_method" validate:"required"`
	ChangeDue      decimal.Decimal          `json:"change_due"`
	CustomerCredit decimal.Decimal          `json:"customer_credit"`
	IsReprinted    bool                     `json:"is_reprinted"`
	Items          []TransactionItemRequest `json:"items" validate:"required"`
}

// TransactionItemResponse línea persistida con el nombre congelado del producto.
type TransactionItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ItemTotal    decimal.Decimal `json:"item_total"`
	ItemDiscount decimal.Decimal `json:"item_discount"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
}

// TransactionResponse cabecera de venta con el nombre del cliente resuelto.
type TransactionResponse struct {
	TransactionID  string                    `json:"transaction_id"`
	CustomerID     *string                   `json:"customer_id"`
	CustomerName   *string                   `json:"customer_name"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	TotalDiscount  decimal.Decimal           `json:"total_discount"`
	FinalAmount    decimal.Decimal           `json:"final_amount"`
	PaymentMethod  string                    `json:"payment_method"`
	ChangeDue      decimal.Decimal           `json:"change_due"`
	CustomerCredit decimal.Decimal           `json:"customer_credit"`
	IsReprinted    bool                      `json:"is_reprinted"`
	CreatedAt      string                    `json:"created_at"`
	Items          []TransactionItemResponse `json:"items,omitempty"`
}

// ListTransactionsResponse página de ventas con el total sin paginar.
type ListTransactionsResponse struct {
	Data  []TransactionResponse `json:"data"`
	Total int                   `json:"total"`
}

// BulkSaleRequest venta agregada de un día pasado, sin líneas.
type BulkSaleRequest struct {
	Date          string          `json:"date" validate:"required"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
}
