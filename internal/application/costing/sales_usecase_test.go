package costing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

func newSalesUC(s *memStore) *costing.SalesUseCase {
	return costing.NewSalesUseCase(
		&fakeTxRunner{store: s},
		&memCustomerRepo{s: s},
		&memSaleRepo{s: s},
		nopAuditor{},
	)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestRecordSaleComputesCOGS(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3147"))
	uc := newSalesUC(s)

	sale, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("10")}},
	})
	require.NoError(t, err)

	assert.True(t, sale.Subtotal.Equal(dec("60000")))
	assert.True(t, sale.TotalAmount.Equal(dec("60000")))
	assert.True(t, sale.TotalCost.Equal(dec("31470")))
	assert.Equal(t, "Walk-in Customer", sale.CustomerName)
	assert.Equal(t, entity.PaymentCash, sale.PaymentMethod)
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].UnitCost.Equal(dec("3147")))

	// Selling moves stock but never the average unit cost.
	p := s.products["pb-500"]
	assert.True(t, p.CurrentStock.Equal(dec("50")))
	assert.True(t, p.AverageUnitCost.Equal(dec("3147")))
}

func TestRecordSalePriceOverride(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	uc := newSalesUC(s)

	sale, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "pb-500", Quantity: dec("5"), UnitPrice: decPtr("5500")},
		},
	})
	require.NoError(t, err)
	assert.True(t, sale.Subtotal.Equal(dec("27500")))
	assert.True(t, sale.Items[0].UnitPrice.Equal(dec("5500")))
}

func TestRecordSaleManualTotalKeepsSubtotal(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	uc := newSalesUC(s)

	sale, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items:       []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("10")}},
		ManualTotal: decPtr("55000"),
	})
	require.NoError(t, err)

	// The negotiated total stands, the computed subtotal stays on record.
	assert.True(t, sale.Subtotal.Equal(dec("60000")))
	assert.True(t, sale.TotalAmount.Equal(dec("55000")))
}

func TestRecordSaleOversellRejected(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("3"), dec("3000"))
	seedProduct(s, "oil-1l", "Peanut Oil 1L", dec("9000"), dec("20"), dec("4000"))
	uc := newSalesUC(s)

	_, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: "oil-1l", Quantity: dec("2")},
			{ProductID: "pb-500", Quantity: dec("5")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// The whole cart rolls back, including the line that had stock.
	assert.True(t, s.products["oil-1l"].CurrentStock.Equal(dec("20")))
	assert.True(t, s.products["pb-500"].CurrentStock.Equal(dec("3")))
	assert.Empty(t, s.sales)
}

func TestRecordSaleCatalogueCustomer(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	s.customers["cust-1"] = &entity.Customer{ID: "cust-1", Name: "Mama Ntilie Shop", TotalSpent: dec("15000")}
	uc := newSalesUC(s)

	sale, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("10")}},
		CustomerID: "cust-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mama Ntilie Shop", sale.CustomerName)
	assert.True(t, s.customers["cust-1"].TotalSpent.Equal(dec("75000")))
}

func TestRecordSaleUnknownCustomer(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	uc := newSalesUC(s)

	_, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items:      []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("1")}},
		CustomerID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, s.products["pb-500"].CurrentStock.Equal(dec("60")))
}

func TestRecordSaleDuplicateOperationID(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	uc := newSalesUC(s)

	in := dto.RecordSaleRequest{
		Items:       []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("10")}},
		OperationID: "op-sale-1",
	}
	_, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", in)
	require.NoError(t, err)

	_, err = uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", in)
	assert.ErrorIs(t, err, domain.ErrDuplicateOperation)

	assert.True(t, s.products["pb-500"].CurrentStock.Equal(dec("50")))
	assert.Len(t, s.sales, 1)
}

func TestRecordSaleValidation(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("60"), dec("3000"))
	uc := newSalesUC(s)

	cases := []dto.RecordSaleRequest{
		{},
		{Items: []dto.SaleItemRequest{{ProductID: "", Quantity: dec("1")}}},
		{Items: []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("0")}}},
		{Items: []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("1"), UnitPrice: decPtr("-5")}}},
		{Items: []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("1")}}, ManualTotal: decPtr("-1")},
	}
	for _, in := range cases {
		_, err := uc.RecordSale(context.Background(), "shop@nyamoya.co.tz", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
