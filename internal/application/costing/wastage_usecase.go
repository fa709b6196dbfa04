package costing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// WastageUseCase writes off involuntary stock loss against either ledger.
// The stock deduction, the wastage log entry and the correlated "Wastage"
// expense commit as one transaction; valuation uses the item's average
// cost at the moment of reporting and never alters it.
type WastageUseCase struct {
	txRunner    TxRunner
	wastageRepo repository.WastageRepository
	audit       Auditor
}

// NewWastageUseCase builds the use case.
func NewWastageUseCase(txRunner TxRunner, wastageRepo repository.WastageRepository, audit Auditor) *WastageUseCase {
	return &WastageUseCase{txRunner: txRunner, wastageRepo: wastageRepo, audit: audit}
}

// ReportWastage records a loss. Writing off more than the on-hand stock is
// rejected with ErrInsufficientStock, the same policy as sales and production.
func (uc *WastageUseCase) ReportWastage(ctx context.Context, userEmail string, in dto.ReportWastageRequest) (*entity.WastageEntry, error) {
	reason := strings.TrimSpace(in.Reason)
	if in.ItemID == "" || reason == "" || !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.ItemType != entity.WastageItemRaw && in.ItemType != entity.WastageItemFinished {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	entry := &entity.WastageEntry{
		ID:          uuid.New().String(),
		ItemType:    in.ItemType,
		ItemID:      in.ItemID,
		Quantity:    in.Quantity,
		Reason:      reason,
		OperationID: in.OperationID,
		CreatedAt:   now,
		CreatedBy:   userEmail,
	}

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		switch in.ItemType {
		case entity.WastageItemRaw:
			material, err := r.Materials.GetForUpdate(in.ItemID)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.ErrNotFound
			}
			entry.ItemName = material.Name
			entry.Unit = material.Unit
			entry.UnitCost = material.AverageCost
			if err := consumeMaterial(r, material, in.Quantity); err != nil {
				return err
			}

		case entity.WastageItemFinished:
			product, err := r.Products.GetForUpdate(in.ItemID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.CurrentStock.LessThan(in.Quantity) {
				return domain.ErrInsufficientStock
			}
			entry.ItemName = product.Name
			entry.Unit = "units"
			entry.UnitCost = product.AverageUnitCost
			if err := r.Products.UpdateStock(product.ID, product.CurrentStock.Sub(in.Quantity)); err != nil {
				return err
			}
		}

		entry.LossValue = in.Quantity.Mul(entry.UnitCost)
		if err := r.Wastage.Create(entry); err != nil {
			return err
		}

		expense := &entity.Expense{
			ID:          uuid.New().String(),
			Description: fmt.Sprintf("Wastage: %s (%s)", entry.ItemName, reason),
			Category:    entity.ExpenseWastage,
			Amount:      entry.LossValue,
			RefType:     "wastage",
			RefID:       entry.ID,
			Date:        now,
			CreatedAt:   now,
			CreatedBy:   userEmail,
		}
		return r.Expenses.Create(expense)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(userEmail, "Reported Waste",
		fmt.Sprintf("Wrote off %s %s of %s. Value: TZS %s", in.Quantity, entry.Unit, entry.ItemName, entry.LossValue.Round(0)))
	return entry, nil
}

// List returns wastage entries, newest first.
func (uc *WastageUseCase) List(ctx context.Context, limit, offset int) ([]*entity.WastageEntry, error) {
	return uc.wastageRepo.List(limit, offset)
}
