package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nyamoya/erp-backend/internal/application/audit"
	"github.com/nyamoya/erp-backend/internal/application/auth"
	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/reporting"
	"github.com/nyamoya/erp-backend/internal/application/usecase"
	infrapdf "github.com/nyamoya/erp-backend/internal/infrastructure/pdf"
	"github.com/nyamoya/erp-backend/internal/infrastructure/postgres"
	httpRouter "github.com/nyamoya/erp-backend/internal/interfaces/http"
	"github.com/nyamoya/erp-backend/pkg/config"
	"github.com/nyamoya/erp-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	// Standalone repos run against the pool; TxRunner rebinds the ledger
	// repos to each transaction.
	materialRepo := postgres.NewRawMaterialRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	batchRepo := postgres.NewProductionBatchRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	wastageRepo := postgres.NewWastageRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	capitalRepo := postgres.NewCapitalRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditRecorder := audit.NewRecorder(auditRepo, log)

	materialUC := costing.NewMaterialUseCase(txRunner, materialRepo, supplierRepo, auditRecorder)
	productUC := costing.NewProductUseCase(productRepo, auditRecorder)
	productionUC := costing.NewProductionUseCase(txRunner, productRepo, batchRepo, auditRecorder)
	salesUC := costing.NewSalesUseCase(txRunner, customerRepo, saleRepo, auditRecorder)
	wastageUC := costing.NewWastageUseCase(txRunner, wastageRepo, auditRecorder)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, capitalRepo, auditRecorder)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	financialsUC := reporting.NewFinancialsUseCase(reportRepo)
	valuationUC := reporting.NewValuationUseCase(reportRepo)
	cashBookUC := reporting.NewCashBookUseCase(reportRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Nyamoya ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		MaterialUC:   materialUC,
		ProductUC:    productUC,
		ProductionUC: productionUC,
		SalesUC:      salesUC,
		WastageUC:    wastageUC,
		ExpenseUC:    expenseUC,
		CustomerUC:   customerUC,
		SupplierUC:   supplierUC,
		FinancialsUC: financialsUC,
		ValuationUC:  valuationUC,
		CashBookUC:   cashBookUC,
		Audit:        auditRecorder,
		Receipts:     pdfGenerator,
		ReportPDF:    pdfGenerator,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
