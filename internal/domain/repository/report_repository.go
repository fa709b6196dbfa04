package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotalsResult is the raw output of the period sales aggregate.
type SalesTotalsResult struct {
	Revenue          decimal.Decimal // Σ sales.total_amount
	COGS             decimal.Decimal // Σ sales.total_cost
	TransactionCount int
}

// TopProductResult is one row of the best-sellers aggregate.
type TopProductResult struct {
	ProductID    string
	ProductName  string
	QuantitySold decimal.Decimal
	Revenue      decimal.Decimal
	MarginPct    decimal.Decimal // (revenue - cogs) / revenue * 100, zero-guarded
}

// ValuationResult is the stock valuation snapshot for the balance sheet.
type ValuationResult struct {
	RawMaterialValue  decimal.Decimal // Σ current_stock × average_cost
	FinishedGoodValue decimal.Decimal // Σ current_stock × average_unit_cost
}

// LowStockItem is one item under its reorder threshold.
type LowStockItem struct {
	ID           string
	Name         string
	Unit         string
	CurrentStock decimal.Decimal
}

// CashBookLine is one merged cash-book row (sale in, expense out,
// capital in/out) ordered by date.
type CashBookLine struct {
	Date        time.Time
	Kind        string // "sale" | "expense" | "capital"
	Description string
	In          decimal.Decimal
	Out         decimal.Decimal
}

// ReportRepository defines the read-only aggregate queries behind the
// reporting use cases. Implementations run against the pool, outside any
// transaction: reports are advisory snapshots, staleness is acceptable.
type ReportRepository interface {
	// GetSalesTotals returns revenue, COGS and transaction count for the
	// period. COALESCE guarantees zeros for an empty period.
	GetSalesTotals(ctx context.Context, start, end time.Time) (SalesTotalsResult, error)

	// GetExpenseTotal sums expenses in the period excluding the given
	// categories (reconciliation against COGS and wastage).
	GetExpenseTotal(ctx context.Context, start, end time.Time, excludeCategories []string) (decimal.Decimal, error)

	// GetWastageTotal sums wastage loss value in the period.
	GetWastageTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetTopProducts returns the limit best-selling products by revenue.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]TopProductResult, error)

	// GetInventoryValuation values both ledgers at current average cost.
	GetInventoryValuation(ctx context.Context) (ValuationResult, error)

	// GetLowStockMaterials lists materials at or below the threshold.
	GetLowStockMaterials(ctx context.Context, threshold decimal.Decimal) ([]LowStockItem, error)

	// GetCashBook returns the merged sales/expenses/capital lines for the
	// period ordered by date ascending.
	GetCashBook(ctx context.Context, start, end time.Time) ([]CashBookLine, error)
}
