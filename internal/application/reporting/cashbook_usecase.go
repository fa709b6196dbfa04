package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/costing"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// CashBookUseCase merges sales (money in), expenses (money out) and
// capital entries into one chronological cash view with a running balance.
type CashBookUseCase struct {
	reportRepo repository.ReportRepository
}

// NewCashBookUseCase builds the use case.
func NewCashBookUseCase(reportRepo repository.ReportRepository) *CashBookUseCase {
	return &CashBookUseCase{reportRepo: reportRepo}
}

// CashBook returns the merged lines for the period, oldest first.
func (uc *CashBookUseCase) CashBook(ctx context.Context, start, end time.Time) (*dto.CashBookResponse, error) {
	lines, err := uc.reportRepo.GetCashBook(ctx, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CashBookLineDTO, 0, len(lines))
	balance := decimal.Zero
	totalIn := decimal.Zero
	totalOut := decimal.Zero
	for _, l := range lines {
		balance = balance.Add(l.In).Sub(l.Out)
		totalIn = totalIn.Add(l.In)
		totalOut = totalOut.Add(l.Out)
		out = append(out, dto.CashBookLineDTO{
			Date:        l.Date,
			Kind:        l.Kind,
			Description: l.Description,
			In:          costing.RoundCurrency(l.In),
			Out:         costing.RoundCurrency(l.Out),
			Balance:     costing.RoundCurrency(balance),
		})
	}

	return &dto.CashBookResponse{
		PeriodStart: start,
		PeriodEnd:   end,
		Lines:       out,
		TotalIn:     costing.RoundCurrency(totalIn),
		TotalOut:    costing.RoundCurrency(totalOut),
		NetBalance:  costing.RoundCurrency(totalIn.Sub(totalOut)),
	}, nil
}
