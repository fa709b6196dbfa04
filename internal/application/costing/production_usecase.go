package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/costing"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// ProductionUseCase converts raw-material consumptions into finished-goods
// stock. One batch is one transaction: material deductions, the product's
// stock+cost roll-up and the immutable batch record commit together or not
// at all; a partial write here corrupts the cost chain.
type ProductionUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	batchRepo   repository.ProductionBatchRepository
	audit       Auditor
}

// NewProductionUseCase builds the use case.
func NewProductionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	batchRepo repository.ProductionBatchRepository,
	audit Auditor,
) *ProductionUseCase {
	return &ProductionUseCase{txRunner: txRunner, productRepo: productRepo, batchRepo: batchRepo, audit: audit}
}

// RecordProduction records one production run:
//
//  1. each ingredient's unit cost is snapshotted from the material's
//     average cost BEFORE consumption (the deduction does not move cost,
//     but the batch record must keep the value as it was),
//  2. materials are consumed under row locks (insufficient stock rejects
//     the whole batch),
//  3. totalCost = Σ qty × snapshot cost, unitCost = totalCost / produced,
//  4. the product's average unit cost absorbs the batch through the shared
//     weighted-average formula and its stock grows,
//  5. the immutable batch record is appended.
func (uc *ProductionUseCase) RecordProduction(ctx context.Context, userEmail string, in dto.RecordProductionRequest) (*entity.ProductionBatch, error) {
	if in.ProductID == "" || !in.Quantity.IsPositive() || len(in.Ingredients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	seen := make(map[string]bool, len(in.Ingredients))
	for _, ing := range in.Ingredients {
		if ing.MaterialID == "" || !ing.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if seen[ing.MaterialID] {
			return nil, domain.ErrInvalidInput
		}
		seen[ing.MaterialID] = true
	}

	// Existence check outside the tx keeps the locked section short.
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	batchNumber := in.BatchNumber
	if batchNumber == "" {
		batchNumber = generateBatchNumber()
	}

	now := time.Now()
	batch := &entity.ProductionBatch{
		ID:               uuid.New().String(),
		BatchNumber:      batchNumber,
		ProductID:        in.ProductID,
		QuantityProduced: in.Quantity,
		OperationID:      in.OperationID,
		Date:             now,
		CreatedAt:        now,
		CreatedBy:        userEmail,
	}

	err = uc.txRunner.Run(ctx, func(r TxRepos) error {
		totalCost := decimal.Zero
		ingredients := make([]entity.BatchIngredient, 0, len(in.Ingredients))
		for _, ing := range in.Ingredients {
			material, err := r.Materials.GetForUpdate(ing.MaterialID)
			if err != nil {
				return err
			}
			if material == nil {
				return domain.ErrNotFound
			}

			unitCost := material.AverageCost // snapshot before the deduction
			if err := consumeMaterial(r, material, ing.Quantity); err != nil {
				return err
			}

			lineCost := ing.Quantity.Mul(unitCost)
			totalCost = totalCost.Add(lineCost)
			ingredients = append(ingredients, entity.BatchIngredient{
				ID:         uuid.New().String(),
				BatchID:    batch.ID,
				MaterialID: material.ID,
				Name:       material.Name,
				Unit:       material.Unit,
				Quantity:   ing.Quantity,
				UnitCost:   unitCost,
				LineCost:   lineCost,
			})
		}

		unitCost := totalCost.Div(in.Quantity)

		locked, err := r.Products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newAvgCost := costing.WeightedAverage(locked.CurrentStock, locked.AverageUnitCost, in.Quantity, unitCost)
		newStock := locked.CurrentStock.Add(in.Quantity)
		if err := r.Products.UpdateStockAndCost(in.ProductID, newStock, newAvgCost); err != nil {
			return err
		}

		batch.TotalCost = totalCost
		batch.UnitCost = unitCost
		batch.Ingredients = ingredients
		return r.Batches.Create(batch)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(userEmail, "Recorded Production",
		fmt.Sprintf("Batch %s: produced %s units of %s at cost %s/unit",
			batchNumber, in.Quantity, product.Name, batch.UnitCost.Round(2)))
	return batch, nil
}

// GetBatch returns one production batch with its ingredient snapshot.
func (uc *ProductionUseCase) GetBatch(ctx context.Context, id string) (*entity.ProductionBatch, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// ListBatches returns the production log, newest first.
func (uc *ProductionUseCase) ListBatches(ctx context.Context, limit, offset int) ([]*entity.ProductionBatch, error) {
	return uc.batchRepo.List(limit, offset)
}

// generateBatchNumber mirrors the shop-floor convention: BATCH- plus the
// last six digits of the unix millisecond clock.
func generateBatchNumber() string {
	ms := time.Now().UnixMilli()
	return fmt.Sprintf("BATCH-%06d", ms%1000000)
}
