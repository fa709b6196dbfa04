package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// walkInCustomer is the default name on sales without a catalogue customer.
const walkInCustomer = "Walk-in Customer"

// SalesUseCase records sales: per item the product row is locked, the cost
// of goods sold is taken from the average unit cost before the stock
// deduction, and the whole cart commits as one transaction. Selling never
// moves a product's average unit cost.
type SalesUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
	audit        Auditor
}

// NewSalesUseCase builds the use case.
func NewSalesUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	audit Auditor,
) *SalesUseCase {
	return &SalesUseCase{txRunner: txRunner, customerRepo: customerRepo, saleRepo: saleRepo, audit: audit}
}

// RecordSale processes a cart. The computed subtotal is always stored;
// when the operator passes a manual total the final amount diverges from
// it and both figures stay on the record for audit. Oversell is rejected
// with ErrInsufficientStock for every line.
func (uc *SalesUseCase) RecordSale(ctx context.Context, userEmail string, in dto.RecordSaleRequest) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice != nil && item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ManualTotal != nil && in.ManualTotal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentCash
	}

	customerName := in.CustomerName
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		customerName = customer.Name
	}
	if customerName == "" {
		customerName = walkInCustomer
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		CustomerName:  customerName,
		PaymentMethod: paymentMethod,
		OperationID:   in.OperationID,
		Date:          now,
		CreatedAt:     now,
		CreatedBy:     userEmail,
	}

	err := uc.txRunner.Run(ctx, func(r TxRepos) error {
		subtotal := decimal.Zero
		totalCost := decimal.Zero
		items := make([]entity.SaleItem, 0, len(in.Items))

		for _, line := range in.Items {
			product, err := r.Products.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.CurrentStock.LessThan(line.Quantity) {
				return domain.ErrInsufficientStock
			}

			unitPrice := product.Price
			if line.UnitPrice != nil {
				unitPrice = *line.UnitPrice
			}
			// COGS at the average unit cost before the deduction.
			unitCost := product.AverageUnitCost
			lineTotal := line.Quantity.Mul(unitPrice)

			newStock := product.CurrentStock.Sub(line.Quantity)
			if err := r.Products.UpdateStock(product.ID, newStock); err != nil {
				return err
			}

			subtotal = subtotal.Add(lineTotal)
			totalCost = totalCost.Add(line.Quantity.Mul(unitCost))
			items = append(items, entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  line.Quantity,
				UnitPrice: unitPrice,
				UnitCost:  unitCost,
				LineTotal: lineTotal,
			})
		}

		totalAmount := subtotal
		if in.ManualTotal != nil {
			totalAmount = *in.ManualTotal
		}

		sale.Items = items
		sale.Subtotal = subtotal
		sale.TotalAmount = totalAmount
		sale.TotalCost = totalCost
		if err := r.Sales.Create(sale); err != nil {
			return err
		}

		if sale.CustomerID != "" {
			if err := r.Customers.AddToTotalSpent(sale.CustomerID, totalAmount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Record(userEmail, "Recorded Sale",
		fmt.Sprintf("Sold %d item(s) to %s for %s TZS", len(sale.Items), customerName, sale.TotalAmount.Round(0)))
	return sale, nil
}

// Get returns one sale with its items.
func (uc *SalesUseCase) Get(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// List returns sales, newest first.
func (uc *SalesUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Sale, error) {
	return uc.saleRepo.List(limit, offset)
}
