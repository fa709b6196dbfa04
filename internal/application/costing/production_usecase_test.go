package costing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
)

func newProductionUC(s *memStore) *costing.ProductionUseCase {
	return costing.NewProductionUseCase(
		&fakeTxRunner{store: s},
		&memProductRepo{s: s},
		&memBatchRepo{s: s},
		nopAuditor{},
	)
}

// The worked roll-up: 50kg peanuts @ 3700 + 2kg salt @ 800 + 1kg sugar
// @ 2200 makes 60 jars, so the batch costs 188,800 and each jar 3,146.67
// (repeating). The product ledger then absorbs the batch at weighted
// average cost.
func TestRecordProductionCostRollUp(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("150"), dec("3700"))
	seedMaterial(s, "salt", "Salt", "kg", dec("20"), dec("800"))
	seedMaterial(s, "sugar", "Sugar", "kg", dec("30"), dec("2200"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))
	uc := newProductionUC(s)

	batch, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "pb-500",
		Quantity:  dec("60"),
		Ingredients: []dto.IngredientRequest{
			{MaterialID: "peanuts", Quantity: dec("50")},
			{MaterialID: "salt", Quantity: dec("2")},
			{MaterialID: "sugar", Quantity: dec("1")},
		},
	})
	require.NoError(t, err)

	assert.True(t, batch.TotalCost.Equal(dec("188800")), "got %s", batch.TotalCost)
	expectedUnit := dec("188800").Div(dec("60"))
	assert.True(t, batch.UnitCost.Equal(expectedUnit), "got %s", batch.UnitCost)
	require.Len(t, batch.Ingredients, 3)
	assert.True(t, batch.Ingredients[0].UnitCost.Equal(dec("3700")))
	assert.True(t, batch.Ingredients[0].LineCost.Equal(dec("185000")))

	// Materials deducted, costs untouched.
	assert.True(t, s.materials["peanuts"].CurrentStock.Equal(dec("100")))
	assert.True(t, s.materials["peanuts"].AverageCost.Equal(dec("3700")))
	assert.True(t, s.materials["salt"].CurrentStock.Equal(dec("18")))

	// Product absorbed the batch: zero opening stock means the batch unit
	// cost becomes the average.
	p := s.products["pb-500"]
	assert.True(t, p.CurrentStock.Equal(dec("60")))
	assert.True(t, p.AverageUnitCost.Equal(expectedUnit))
}

func TestRecordProductionBlendsProductAverage(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("100"), dec("3000"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("40"), dec("3000"))
	uc := newProductionUC(s)

	// 10 jars at 6000/unit batch cost against 40 jars at 3000 on hand:
	// (40*3000 + 10*6000) / 50 = 3600.
	_, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "pb-500",
		Quantity:  dec("10"),
		Ingredients: []dto.IngredientRequest{
			{MaterialID: "peanuts", Quantity: dec("20")},
		},
	})
	require.NoError(t, err)

	p := s.products["pb-500"]
	assert.True(t, p.CurrentStock.Equal(dec("50")))
	assert.True(t, p.AverageUnitCost.Equal(dec("3600")), "got %s", p.AverageUnitCost)
}

func TestRecordProductionInsufficientStockRollsBack(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("100"), dec("3700"))
	seedMaterial(s, "salt", "Salt", "kg", dec("1"), dec("800"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))
	uc := newProductionUC(s)

	_, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "pb-500",
		Quantity:  dec("60"),
		Ingredients: []dto.IngredientRequest{
			{MaterialID: "peanuts", Quantity: dec("50")},
			{MaterialID: "salt", Quantity: dec("2")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing committed: the peanuts deduction from the same batch must
	// have rolled back with the salt failure.
	assert.True(t, s.materials["peanuts"].CurrentStock.Equal(dec("100")))
	assert.True(t, s.products["pb-500"].CurrentStock.Equal(dec("0")))
	assert.Empty(t, s.batches)
}

func TestRecordProductionDuplicateOperationID(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("100"), dec("3700"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))
	uc := newProductionUC(s)

	in := dto.RecordProductionRequest{
		ProductID:   "pb-500",
		Quantity:    dec("10"),
		OperationID: "op-batch-1",
		Ingredients: []dto.IngredientRequest{{MaterialID: "peanuts", Quantity: dec("10")}},
	}
	_, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", in)
	require.NoError(t, err)

	_, err = uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", in)
	assert.ErrorIs(t, err, domain.ErrDuplicateOperation)

	// Replay is rejected atomically: first run's deduction only.
	assert.True(t, s.materials["peanuts"].CurrentStock.Equal(dec("90")))
	assert.True(t, s.products["pb-500"].CurrentStock.Equal(dec("10")))
	assert.Len(t, s.batches, 1)
}

func TestRecordProductionValidation(t *testing.T) {
	s := newMemStore()
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))
	uc := newProductionUC(s)

	cases := []dto.RecordProductionRequest{
		{ProductID: "", Quantity: dec("10"), Ingredients: []dto.IngredientRequest{{MaterialID: "m", Quantity: dec("1")}}},
		{ProductID: "pb-500", Quantity: dec("0"), Ingredients: []dto.IngredientRequest{{MaterialID: "m", Quantity: dec("1")}}},
		{ProductID: "pb-500", Quantity: dec("10")},
		{ProductID: "pb-500", Quantity: dec("10"), Ingredients: []dto.IngredientRequest{{MaterialID: "m", Quantity: dec("0")}}},
		// Duplicate ingredient lines would double-lock the row.
		{ProductID: "pb-500", Quantity: dec("10"), Ingredients: []dto.IngredientRequest{
			{MaterialID: "m", Quantity: dec("1")}, {MaterialID: "m", Quantity: dec("2")},
		}},
	}
	for _, in := range cases {
		_, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "missing", Quantity: dec("10"),
		Ingredients: []dto.IngredientRequest{{MaterialID: "m", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordProductionGeneratesBatchNumber(t *testing.T) {
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("100"), dec("3700"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))
	uc := newProductionUC(s)

	batch, err := uc.RecordProduction(context.Background(), "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "pb-500",
		Quantity:  dec("10"),
		Ingredients: []dto.IngredientRequest{
			{MaterialID: "peanuts", Quantity: dec("10")},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(batch.BatchNumber, "BATCH-"))
}
