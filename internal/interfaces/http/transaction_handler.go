package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kiranapos/pos-api/internal/application/dto"
	"github.com/kiranapos/pos-api/internal/application/sales"
)

// TransactionHandler maneja las peticiones HTTP de ventas (protegido).
type TransactionHandler struct {
	createUC  *sales.CreateTransactionUseCase
	historyUC *sales.TransactionHistoryUseCase
	bulkUC    *sales.BulkSaleUseCase
	receiptUC *sales.ReceiptUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(
	createUC *sales.CreateTransactionUseCase,
	historyUC *sales.TransactionHistoryUseCase,
	bulkUC *sales.BulkSaleUseCase,
	receiptUC *sales.ReceiptUseCase,
) *TransactionHandler {
	return &TransactionHandler{createUC: createUC, historyUC: historyUC, bulkUC: bulkUC, receiptUC: receiptUC}
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Venta con líneas"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Execute(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas por periodo
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        filter     query  string  false  "day | month | year | custom"  default(day)
// @Param        startDate  query  string  false  "YYYY-MM-DD (filtro custom)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (filtro custom)"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ListTransactionsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	out, err := h.historyUC.List(
		c.Query("filter", "day"),
		c.Query("startDate"),
		c.Query("endDate"),
		c.QueryInt("page", 1),
		c.QueryInt("limit", 10),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar ventas del periodo (CSV o XLSX)
// @Tags         transactions
// @Security     Bearer
// @Produce      text/csv
// @Param        filter     query  string  false  "day | month | year | custom"  default(day)
// @Param        startDate  query  string  false  "YYYY-MM-DD (filtro custom)"
// @Param        endDate    query  string  false  "YYYY-MM-DD (filtro custom)"
// @Param        format     query  string  false  "csv | xlsx"  default(csv)
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions/export [get]
func (h *TransactionHandler) Export(c *fiber.Ctx) error {
	filter := c.Query("filter", "day")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	stamp := time.Now().Format("20060102")

	switch c.Query("format", "csv") {
	case "csv":
		out, err := h.historyUC.ExportCSV(filter, startDate, endDate)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions_`+stamp+`.csv"`)
		return c.Send(out)
	case "xlsx":
		out, err := h.historyUC.ExportXLSX(filter, startDate, endDate)
		if err != nil {
			return respondError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions_`+stamp+`.xlsx"`)
		return c.Send(out)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato soportado: csv o xlsx"})
	}
}

// CreateBulk godoc
// @Summary      Registrar venta agregada de un día pasado
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkSaleRequest  true  "Venta agregada"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions/bulk [post]
func (h *TransactionHandler) CreateBulk(c *fiber.Ctx) error {
	var in dto.BulkSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bulkUC.Execute(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener una venta con sus líneas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.historyUC.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar el comprobante PDF de una venta
// @Tags         transactions
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la venta"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.receiptUC.Execute(id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="receipt_`+id+`.pdf"`)
	return c.Send(out)
}
