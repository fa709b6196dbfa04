package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/audit"
	"github.com/nyamoya/erp-backend/internal/application/auth"
	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/reporting"
	"github.com/nyamoya/erp-backend/internal/application/usecase"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	MaterialUC   *costing.MaterialUseCase
	ProductUC    *costing.ProductUseCase
	ProductionUC *costing.ProductionUseCase
	SalesUC      *costing.SalesUseCase
	WastageUC    *costing.WastageUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	CustomerUC   *usecase.CustomerUseCase
	SupplierUC   *usecase.SupplierUseCase
	FinancialsUC *reporting.FinancialsUseCase
	ValuationUC  *reporting.ValuationUseCase
	CashBookUC   *reporting.CashBookUseCase
	Audit        *audit.Recorder
	Receipts     ReceiptGenerator
	ReportPDF    FinancialReportGenerator
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Raw materials
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/:id/restock", materialHandler.Restock)

	// Finished goods
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/price", productHandler.UpdatePrice)

	// Production batches
	production := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Post("/", productionHandler.Record)
	production.Get("/", productionHandler.List)
	production.Get("/:id", productionHandler.GetByID)

	// Sales
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC, deps.Receipts)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Wastage
	wastage := protected.Group("/wastage")
	wastageHandler := NewWastageHandler(deps.WastageUC)
	wastage.Post("/", wastageHandler.Report)
	wastage.Get("/", wastageHandler.List)

	// Expenses + capital
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses")
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	capital := protected.Group("/capital", RequireRole(entity.RoleAdmin))
	capital.Post("/", expenseHandler.CreateCapital)

	// Customers and suppliers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Reports
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.FinancialsUC, deps.ValuationUC, deps.CashBookUC, deps.ReportPDF)
	reports.Get("/financials", reportHandler.Financials)
	reports.Get("/financials/pdf", reportHandler.FinancialsPDF)
	reports.Get("/top-products", reportHandler.TopProducts)
	reports.Get("/valuation", reportHandler.Valuation)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/cash-book", reportHandler.CashBook)

	// Audit trail (admin only)
	auditHandler := NewAuditHandler(deps.Audit)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.ListRecent)

	// CSV exports
	exports := protected.Group("/exports")
	exportHandler := NewExportHandler(deps.SalesUC, deps.ExpenseUC)
	exports.Get("/sales.csv", exportHandler.SalesCSV)
	exports.Get("/expenses.csv", exportHandler.ExpensesCSV)
}
