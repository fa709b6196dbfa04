package reporting

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/costing"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// defaultLowStockThreshold mirrors the shop's reorder alert level.
var defaultLowStockThreshold = decimal.NewFromInt(10)

// ValuationUseCase values the two inventory ledgers at current average
// cost (balance-sheet current assets) and lists items under their reorder
// threshold.
type ValuationUseCase struct {
	reportRepo repository.ReportRepository
}

// NewValuationUseCase builds the use case.
func NewValuationUseCase(reportRepo repository.ReportRepository) *ValuationUseCase {
	return &ValuationUseCase{reportRepo: reportRepo}
}

// InventoryValuation returns stock value = Σ quantity × average cost for
// both ledgers.
func (uc *ValuationUseCase) InventoryValuation(ctx context.Context) (*dto.ValuationResponse, error) {
	v, err := uc.reportRepo.GetInventoryValuation(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ValuationResponse{
		RawMaterialValue:  costing.RoundCurrency(v.RawMaterialValue),
		FinishedGoodValue: costing.RoundCurrency(v.FinishedGoodValue),
		TotalValue:        costing.RoundCurrency(v.RawMaterialValue.Add(v.FinishedGoodValue)),
	}, nil
}

// LowStockMaterials lists materials at or below the threshold (default 10).
func (uc *ValuationUseCase) LowStockMaterials(ctx context.Context, threshold *decimal.Decimal) ([]dto.LowStockDTO, error) {
	t := defaultLowStockThreshold
	if threshold != nil && !threshold.IsNegative() {
		t = *threshold
	}
	items, err := uc.reportRepo.GetLowStockMaterials(ctx, t)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.LowStockDTO{
			ID:           it.ID,
			Name:         it.Name,
			Unit:         it.Unit,
			CurrentStock: it.CurrentStock,
		})
	}
	return out, nil
}
