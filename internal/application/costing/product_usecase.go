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
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// ProductUseCase owns the finished-goods catalogue: creation with optional
// opening balance and price edits. Stock and average unit cost are only
// ever moved by production, sales and wastage.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	audit       Auditor
}

// NewProductUseCase builds the use case.
func NewProductUseCase(productRepo repository.ProductRepository, audit Auditor) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, audit: audit}
}

// CreateProduct adds a product to the catalogue. Opening stock, when
// given, requires an opening cost baseline so valuation never starts
// undefined.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, userEmail string, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.OpeningStock.IsNegative() || in.OpeningCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.productRepo.GetByName(name); existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            name,
		Price:           in.Price,
		CurrentStock:    in.OpeningStock,
		AverageUnitCost: in.OpeningCost,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.audit.Record(userEmail, "Created Product",
		fmt.Sprintf("Added %s to catalogue at %s TZS", name, in.Price))
	return product, nil
}

// UpdatePrice changes only the selling price.
func (uc *ProductUseCase) UpdatePrice(ctx context.Context, userEmail, productID string, price decimal.Decimal) error {
	if productID == "" || price.IsNegative() {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.UpdatePrice(productID, price); err != nil {
		return err
	}
	uc.audit.Record(userEmail, "Updated Price",
		fmt.Sprintf("%s: %s → %s TZS", product.Name, product.Price, price))
	return nil
}

// Get returns one product.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List returns products paginated.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.List(limit, offset)
}
