// Package reporting contains the read-only aggregates behind the
// dashboard, the monthly archive reports and the balance-sheet valuation.
// Everything here is derived from the ledgers and logs; nothing mutates.
package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/costing"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// FinancialsUseCase computes the profit & loss summary for a period.
//
// Reconciliation rule: the expense sum excludes the "Wastage" category
// (wastage loss is summed separately from the wastage log) AND the
// "Raw Materials" category (material purchases reach the P&L through
// COGS via the production cost chain; counting the purchase expense too
// would double count). The excluded categories still appear in the
// expense listing and the cash book; they are a cash view, not a P&L
// line.
type FinancialsUseCase struct {
	reportRepo repository.ReportRepository
}

// NewFinancialsUseCase builds the use case.
func NewFinancialsUseCase(reportRepo repository.ReportRepository) *FinancialsUseCase {
	return &FinancialsUseCase{reportRepo: reportRepo}
}

// excludedFromPL are the expense categories already represented in the
// P&L by COGS or by the wastage loss line.
var excludedFromPL = []string{entity.ExpenseWastage, entity.ExpenseRawMaterials}

// ComputeFinancials aggregates revenue, COGS, operating expenses and
// wastage loss over the period.
//
//	grossProfit = revenue − cogs
//	netProfit   = grossProfit − expenses − wastageLoss
//
// Margins are zero when revenue is zero: an empty period reports all
// zeros, never NaN. Reads run against the pool outside any transaction;
// the report is an advisory snapshot.
func (uc *FinancialsUseCase) ComputeFinancials(ctx context.Context, start, end time.Time) (*dto.FinancialsResponse, error) {
	sales, err := uc.reportRepo.GetSalesTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.reportRepo.GetExpenseTotal(ctx, start, end, excludedFromPL)
	if err != nil {
		return nil, err
	}
	wastageLoss, err := uc.reportRepo.GetWastageTotal(ctx, start, end)
	if err != nil {
		return nil, err
	}

	grossProfit := sales.Revenue.Sub(sales.COGS)
	netProfit := grossProfit.Sub(expenses).Sub(wastageLoss)

	grossMargin := decimal.Zero
	netMargin := decimal.Zero
	if sales.Revenue.IsPositive() {
		grossMargin = grossProfit.Div(sales.Revenue).Mul(hundred).Round(2)
		netMargin = netProfit.Div(sales.Revenue).Mul(hundred).Round(2)
	}

	return &dto.FinancialsResponse{
		PeriodStart:      start,
		PeriodEnd:        end,
		Revenue:          costing.RoundCurrency(sales.Revenue),
		COGS:             costing.RoundCurrency(sales.COGS),
		Expenses:         costing.RoundCurrency(expenses),
		WastageLoss:      costing.RoundCurrency(wastageLoss),
		GrossProfit:      costing.RoundCurrency(grossProfit),
		NetProfit:        costing.RoundCurrency(netProfit),
		GrossMarginPct:   grossMargin,
		NetMarginPct:     netMargin,
		TransactionCount: sales.TransactionCount,
	}, nil
}

// TopProducts returns the limit best sellers by revenue in the period.
func (uc *FinancialsUseCase) TopProducts(ctx context.Context, start, end time.Time, limit int) ([]dto.TopProductDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := uc.reportRepo.GetTopProducts(ctx, start, end, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			QuantitySold: r.QuantitySold,
			Revenue:      costing.RoundCurrency(r.Revenue),
			MarginPct:    r.MarginPct,
		})
	}
	return out, nil
}
