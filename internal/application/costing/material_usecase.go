package costing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/costing"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// MaterialUseCase owns the raw-material ledger: creation with opening
// balance, transactional restock with weighted-average recosting and the
// correlated "Raw Materials" expense.
type MaterialUseCase struct {
	txRunner     TxRunner
	materialRepo repository.RawMaterialRepository
	supplierRepo repository.SupplierRepository
	audit        Auditor
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(
	txRunner TxRunner,
	materialRepo repository.RawMaterialRepository,
	supplierRepo repository.SupplierRepository,
	audit Auditor,
) *MaterialUseCase {
	return &MaterialUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		supplierRepo: supplierRepo,
		audit:        audit,
	}
}

// CreateMaterial inserts a new raw material, optionally with an opening
// stock and cost. Name and unit are required; negative opening values are
// rejected before any write.
func (uc *MaterialUseCase) CreateMaterial(ctx context.Context, userEmail string, in dto.CreateMaterialRequest) (*entity.RawMaterial, error) {
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.OpeningStock.IsNegative() || in.OpeningCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.materialRepo.GetByName(name); existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	material := &entity.RawMaterial{
		ID:           uuid.New().String(),
		Name:         name,
		Unit:         unit,
		CurrentStock: in.OpeningStock,
		AverageCost:  in.OpeningCost,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.materialRepo.Create(material); err != nil {
		return nil, err
	}

	if in.OpeningStock.IsPositive() {
		uc.audit.Record(userEmail, "Opening Balance",
			fmt.Sprintf("Created %s with starting stock: %s%s @ %s", name, in.OpeningStock, unit, in.OpeningCost))
	} else {
		uc.audit.Record(userEmail, "Created Material", "Added new material: "+name)
	}
	return material, nil
}

// Restock receives a purchase into the ledger: locks the material row,
// recomputes the weighted average cost, adds the quantity and emits the
// correlated "Raw Materials" expense, all in one transaction.
// Duplicate operation ids surface ErrDuplicateOperation (already applied).
func (uc *MaterialUseCase) Restock(ctx context.Context, userEmail, materialID string, in dto.RestockRequest) (*entity.RawMaterial, error) {
	if materialID == "" || !in.Quantity.IsPositive() || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	supplierName := "Unknown Supplier"
	if in.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		supplierName = supplier.Name
	}

	now := time.Now()
	var updated *entity.RawMaterial
	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		material, err := r.Materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		newCost := costing.WeightedAverage(material.CurrentStock, material.AverageCost, in.Quantity, in.UnitPrice)
		newStock := material.CurrentStock.Add(in.Quantity)
		if err := r.Materials.UpdateStockAndCost(materialID, newStock, newCost); err != nil {
			return err
		}

		purchaseValue := in.Quantity.Mul(in.UnitPrice)
		expense := &entity.Expense{
			ID:           uuid.New().String(),
			Description:  fmt.Sprintf("Purchased %s (%s%s)", material.Name, in.Quantity, material.Unit),
			Category:     entity.ExpenseRawMaterials,
			Amount:       purchaseValue,
			SupplierID:   in.SupplierID,
			SupplierName: supplierName,
			RefType:      "restock",
			RefID:        materialID,
			OperationID:  in.OperationID,
			Date:         now,
			CreatedAt:    now,
			CreatedBy:    userEmail,
		}
		if err := r.Expenses.Create(expense); err != nil {
			return err
		}

		material.CurrentStock = newStock
		material.AverageCost = newCost
		material.UpdatedAt = now
		updated = material
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(userEmail, "Restock Material",
		fmt.Sprintf("Bought %s%s %s from %s", in.Quantity, updated.Unit, updated.Name, supplierName))
	return updated, nil
}

// Get returns one material.
func (uc *MaterialUseCase) Get(ctx context.Context, id string) (*entity.RawMaterial, error) {
	material, err := uc.materialRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return material, nil
}

// List returns materials paginated.
func (uc *MaterialUseCase) List(ctx context.Context, limit, offset int) ([]*entity.RawMaterial, error) {
	return uc.materialRepo.List(limit, offset)
}

// consumeMaterial deducts quantity from a locked material row inside an
// open transaction. The caller snapshots AverageCost before calling: the
// deduction never changes cost. Deductions below zero stock are rejected.
func consumeMaterial(r TxRepos, material *entity.RawMaterial, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return domain.ErrInvalidInput
	}
	if material.CurrentStock.LessThan(quantity) {
		return domain.ErrInsufficientStock
	}
	newStock := material.CurrentStock.Sub(quantity)
	if err := r.Materials.UpdateStockAndCost(material.ID, newStock, material.AverageCost); err != nil {
		return err
	}
	material.CurrentStock = newStock
	return nil
}
