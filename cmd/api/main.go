package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/kiranapos/pos-api/internal/application/auth"
	"github.com/kiranapos/pos-api/internal/application/sales"
	"github.com/kiranapos/pos-api/internal/application/usecase"
	infrapdf "github.com/kiranapos/pos-api/internal/infrastructure/pdf"
	"github.com/kiranapos/pos-api/internal/infrastructure/postgres"
	"github.com/kiranapos/pos-api/internal/infrastructure/report"
	httpRouter "github.com/kiranapos/pos-api/internal/interfaces/http"
	"github.com/kiranapos/pos-api/pkg/config"
	"github.com/kiranapos/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	if err := runMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	billerRepo := postgres.NewBillerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	expenseCategoryRepo := postgres.NewExpenseCategoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	xlsxWriter := report.NewXLSXWriter()

	authUC := auth.NewUseCase(billerRepo, cfg.JWT, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner, log)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	createTransactionUC := sales.NewCreateTransactionUseCase(txRunner, log)
	historyUC := sales.NewTransactionHistoryUseCase(transactionRepo, xlsxWriter, log)
	bulkUC := sales.NewBulkSaleUseCase(transactionRepo, log)
	receiptUC := sales.NewReceiptUseCase(transactionRepo, receiptGen, log)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, txRunner, log)
	expenseCategoryUC := usecase.NewExpenseCategoryUseCase(expenseCategoryRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if cfg.Metrics.Enabled {
		app.Use(httpRouter.MetricsMiddleware())
		app.Get("/metrics", httpRouter.MetricsHandler())
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kirana POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		CategoryUC:        categoryUC,
		UnitUC:            unitUC,
		ProductUC:         productUC,
		InventoryUC:       inventoryUC,
		CustomerUC:        customerUC,
		CreateTransaction: createTransactionUC,
		History:           historyUC,
		BulkSale:          bulkUC,
		Receipt:           receiptUC,
		ExpenseUC:         expenseUC,
		ExpenseCategoryUC: expenseCategoryUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// runMigrations aplica las migraciones pendientes al arrancar. Usa el driver
// database/sql de pgx solo para goose; el resto de la app va por pgxpool.
func runMigrations(dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}
