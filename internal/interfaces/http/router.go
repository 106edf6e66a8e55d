package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiranapos/pos-api/internal/application/auth"
	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.UseCase
	CategoryUC        *usecase.CategoryUseCase
	UnitUC            *usecase.UnitUseCase
	ProductUC         *usecase.ProductUseCase
	InventoryUC       *usecase.InventoryUseCase
	CustomerUC        *usecase.CustomerUseCase
	CreateTransaction *sales.CreateTransactionUseCase
	History           *sales.TransactionHistoryUseCase
	BulkSale          *sales.BulkSaleUseCase
	Receipt           *sales.ReceiptUseCase
	ExpenseUC         *usecase.ExpenseUseCase
	ExpenseCategoryUC *usecase.ExpenseCategoryUseCase
	JWTSecret         string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categorías de producto (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Unidades de medida (protegido)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Get("/", unitHandler.List)
	units.Post("/", unitHandler.Create)
	units.Put("/:id", unitHandler.Update)
	units.Delete("/:id", unitHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Existencias (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Post("/", inventoryHandler.Upsert)
	inventory.Get("/:productId", inventoryHandler.GetByProduct)

	// Clientes (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Ventas (protegido). Las rutas fijas van antes que /:id.
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.CreateTransaction, deps.History, deps.BulkSale, deps.Receipt)
	transactions.Get("/export", transactionHandler.Export)
	transactions.Post("/bulk", transactionHandler.CreateBulk)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Get("/:id/receipt", transactionHandler.Receipt)

	// Gastos (protegido)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
	expenses.Get("/:id/changelog", expenseHandler.ListChangeLogs)

	// Categorías de gasto (protegido)
	expenseCategories := protected.Group("/expense-categories")
	expenseCategoryHandler := NewExpenseCategoryHandler(deps.ExpenseCategoryUC)
	expenseCategories.Get("/", expenseCategoryHandler.List)
	expenseCategories.Post("/", expenseCategoryHandler.Create)
	expenseCategories.Put("/:id", expenseCategoryHandler.Update)
	expenseCategories.Delete("/:id", expenseCategoryHandler.Delete)
}
