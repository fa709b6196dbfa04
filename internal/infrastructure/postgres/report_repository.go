package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregate queries behind the reporting use cases.
// Runs against the pool, outside any transaction: reports are snapshots
// and a little staleness is fine.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the reporting adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals returns revenue, COGS and transaction count for the period.
// COALESCE turns an empty period into zeros instead of NULLs.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (repository.SalesTotalsResult, error) {
	const query = `
	SELECT
	    COALESCE(SUM(total_amount), 0) AS revenue,
	    COALESCE(SUM(total_cost), 0)   AS cogs,
	    COUNT(*)                       AS transaction_count
	FROM sales
	WHERE date >= $1 AND date < $2`

	var result repository.SalesTotalsResult
	err := r.pool.QueryRow(ctx, query, start, end).Scan(
		&result.Revenue, &result.COGS, &result.TransactionCount,
	)
	if err != nil {
		return result, fmt.Errorf("reports.GetSalesTotals: %w", err)
	}
	return result, nil
}

// GetExpenseTotal sums period expenses excluding the given categories so
// the P&L does not double count raw-material purchases (already in COGS)
// or wastage (its own line).
func (r *ReportRepo) GetExpenseTotal(ctx context.Context, start, end time.Time, excludeCategories []string) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE date >= $1 AND date < $2
	  AND NOT (category = ANY($3))`

	if excludeCategories == nil {
		excludeCategories = []string{}
	}
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, start, end, excludeCategories).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetExpenseTotal: %w", err)
	}
	return total, nil
}

// GetWastageTotal sums the loss value of wastage entries in the period.
func (r *ReportRepo) GetWastageTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(loss_value), 0)
	FROM wastage
	WHERE created_at >= $1 AND created_at < $2`

	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reports.GetWastageTotal: %w", err)
	}
	return total, nil
}

// GetTopProducts ranks products by revenue over the period. The margin
// percentage is zero when a product's revenue is zero.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    i.product_id,
	    i.name,
	    SUM(i.quantity)                                        AS quantity_sold,
	    SUM(i.line_total)                                      AS revenue,
	    CASE WHEN SUM(i.line_total) = 0 THEN 0
	         ELSE (SUM(i.line_total) - SUM(i.quantity * i.unit_cost))
	              / SUM(i.line_total) * 100
	    END                                                    AS margin_pct
	FROM sale_items i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.date >= $1 AND s.date < $2
	GROUP BY i.product_id, i.name
	ORDER BY revenue DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.QuantitySold, &row.Revenue, &row.MarginPct); err != nil {
			return nil, fmt.Errorf("reports.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryValuation values both ledgers at their current average cost.
func (r *ReportRepo) GetInventoryValuation(ctx context.Context) (repository.ValuationResult, error) {
	const query = `
	SELECT
	    (SELECT COALESCE(SUM(current_stock * average_cost), 0) FROM raw_materials)     AS raw_value,
	    (SELECT COALESCE(SUM(current_stock * average_unit_cost), 0) FROM products)     AS finished_value`

	var result repository.ValuationResult
	err := r.pool.QueryRow(ctx, query).Scan(&result.RawMaterialValue, &result.FinishedGoodValue)
	if err != nil {
		return result, fmt.Errorf("reports.GetInventoryValuation: %w", err)
	}
	return result, nil
}

// GetLowStockMaterials lists materials at or below the threshold, lowest
// stock first.
func (r *ReportRepo) GetLowStockMaterials(ctx context.Context, threshold decimal.Decimal) ([]repository.LowStockItem, error) {
	const query = `
	SELECT id, name, unit, current_stock
	FROM raw_materials
	WHERE current_stock <= $1
	ORDER BY current_stock ASC`

	rows, err := r.pool.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("reports.GetLowStockMaterials: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Unit, &item.CurrentStock); err != nil {
			return nil, fmt.Errorf("reports.GetLowStockMaterials scan: %w", err)
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// GetCashBook merges sales receipts, expense payments and capital
// movements into one date-ordered stream for the period.
func (r *ReportRepo) GetCashBook(ctx context.Context, start, end time.Time) ([]repository.CashBookLine, error) {
	const query = `
	SELECT date, kind, description, money_in, money_out FROM (
	    SELECT s.date AS date, 'sale' AS kind,
	           'Sale to ' || s.customer_name AS description,
	           s.total_amount AS money_in, 0::NUMERIC AS money_out
	    FROM sales s
	    WHERE s.date >= $1 AND s.date < $2
	    UNION ALL
	    SELECT e.date, 'expense',
	           e.category || ': ' || e.description,
	           0::NUMERIC, e.amount
	    FROM expenses e
	    WHERE e.date >= $1 AND e.date < $2
	    UNION ALL
	    SELECT c.date, 'capital',
	           c.type || ': ' || c.description,
	           CASE WHEN c.type = 'injection' THEN c.amount ELSE 0::NUMERIC END,
	           CASE WHEN c.type = 'drawing'   THEN c.amount ELSE 0::NUMERIC END
	    FROM capital_entries c
	    WHERE c.date >= $1 AND c.date < $2
	) lines
	ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("reports.GetCashBook: %w", err)
	}
	defer rows.Close()

	var results []repository.CashBookLine
	for rows.Next() {
		var line repository.CashBookLine
		if err := rows.Scan(&line.Date, &line.Kind, &line.Description, &line.In, &line.Out); err != nil {
			return nil, fmt.Errorf("reports.GetCashBook scan: %w", err)
		}
		results = append(results, line)
	}
	return results, rows.Err()
}
