package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// SupplierUseCase thin CRUD over suppliers.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo}
}

// Create inserts a new supplier.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Phone:     in.Phone,
		Supplies:  in.Supplies,
		CreatedAt: time.Now(),
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// List returns suppliers paginated.
func (uc *SupplierUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.List(limit, offset)
}
