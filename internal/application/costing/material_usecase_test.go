package costing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

func newMaterialUC(s *memStore) *costing.MaterialUseCase {
	return costing.NewMaterialUseCase(
		&fakeTxRunner{store: s},
		&memMaterialRepo{s: s},
		&memSupplierRepo{s: s},
		nopAuditor{},
	)
}

func TestCreateMaterial(t *testing.T) {
	s := newMemStore()
	uc := newMaterialUC(s)

	m, err := uc.CreateMaterial(context.Background(), "ops@nyamoya.co.tz", dto.CreateMaterialRequest{
		Name: "Raw Peanuts", Unit: "kg",
		OpeningStock: dec("100"), OpeningCost: dec("3500"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.True(t, m.CurrentStock.Equal(dec("100")))
	assert.True(t, m.AverageCost.Equal(dec("3500")))

	_, err = uc.CreateMaterial(context.Background(), "ops@nyamoya.co.tz", dto.CreateMaterialRequest{
		Name: "Raw Peanuts", Unit: "kg",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateMaterialValidation(t *testing.T) {
	uc := newMaterialUC(newMemStore())

	cases := []dto.CreateMaterialRequest{
		{Name: "", Unit: "kg"},
		{Name: "Salt", Unit: "  "},
		{Name: "Salt", Unit: "kg", OpeningStock: dec("-1")},
		{Name: "Salt", Unit: "kg", OpeningCost: dec("-500")},
	}
	for _, in := range cases {
		_, err := uc.CreateMaterial(context.Background(), "ops@nyamoya.co.tz", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRestockRecomputesAverageCost(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("100"), dec("3500"))
	uc := newMaterialUC(s)

	// 100kg @ 3500 plus 50kg @ 4100 averages to 3700.
	m, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
		Quantity: dec("50"), UnitPrice: dec("4100"),
	})
	require.NoError(t, err)
	assert.True(t, m.CurrentStock.Equal(dec("150")))
	assert.True(t, m.AverageCost.Equal(dec("3700")), "got %s", m.AverageCost)
}

func TestRestockEmitsRawMaterialsExpense(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("0"), dec("0"))
	s.suppliers["sup-1"] = &entity.Supplier{ID: "sup-1", Name: "Dodoma Farmers Co-op"}
	uc := newMaterialUC(s)

	_, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
		Quantity: dec("40"), UnitPrice: dec("3600"), SupplierID: "sup-1",
	})
	require.NoError(t, err)

	require.Len(t, s.expenses, 1)
	for _, e := range s.expenses {
		assert.Equal(t, entity.ExpenseRawMaterials, e.Category)
		assert.True(t, e.Amount.Equal(dec("144000")))
		assert.Equal(t, "Dodoma Farmers Co-op", e.SupplierName)
		assert.Equal(t, "restock", e.RefType)
		assert.Equal(t, "mat-1", e.RefID)
	}
}

func TestRestockUnknownSupplier(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("10"), dec("3500"))
	uc := newMaterialUC(s)

	_, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
		Quantity: dec("5"), UnitPrice: dec("3500"), SupplierID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// Supplier lookup fails before the tx: no stock or expense side effects.
	assert.True(t, s.materials["mat-1"].CurrentStock.Equal(dec("10")))
	assert.Empty(t, s.expenses)
}

func TestRestockDuplicateOperationID(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("0"), dec("0"))
	uc := newMaterialUC(s)

	in := dto.RestockRequest{Quantity: dec("10"), UnitPrice: dec("3500"), OperationID: "op-abc"}
	_, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", in)
	require.NoError(t, err)

	_, err = uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", in)
	assert.ErrorIs(t, err, domain.ErrDuplicateOperation)

	// The replay must not double-apply: stock from the first call only.
	assert.True(t, s.materials["mat-1"].CurrentStock.Equal(dec("10")))
	assert.Len(t, s.expenses, 1)
}

func TestRestockConcurrent(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("0"), dec("0"))
	uc := newMaterialUC(s)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
				Quantity: dec("10"), UnitPrice: dec("3500"),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	m := s.materials["mat-1"]
	assert.True(t, m.CurrentStock.Equal(dec("100")), "got %s", m.CurrentStock)
	assert.True(t, m.AverageCost.Equal(dec("3500")))
	assert.Len(t, s.expenses, 10)
}

func TestRestockValidation(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "mat-1", "Raw Peanuts", "kg", dec("10"), dec("3500"))
	uc := newMaterialUC(s)

	_, err := uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
		Quantity: dec("0"), UnitPrice: dec("3500"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Restock(context.Background(), "ops@nyamoya.co.tz", "mat-1", dto.RestockRequest{
		Quantity: dec("5"), UnitPrice: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Restock(context.Background(), "ops@nyamoya.co.tz", "missing", dto.RestockRequest{
		Quantity: dec("5"), UnitPrice: dec("3500"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetMaterialNotFound(t *testing.T) {
	uc := newMaterialUC(newMemStore())
	_, err := uc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
