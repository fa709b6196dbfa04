package costing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// Full cycle against one store: restock peanuts, produce jars, sell them,
// write off a loss. Checks that value flows through the cost chain and
// that stock is conserved at every step.
func TestRestockProduceSellCycle(t *testing.T) {
	ctx := context.Background()
	s := newMemStore()
	seedMaterial(s, "peanuts", "Raw Peanuts", "kg", dec("0"), dec("0"))
	seedProduct(s, "pb-500", "Peanut Butter 500g", dec("6000"), dec("0"), dec("0"))

	materials := newMaterialUC(s)
	production := newProductionUC(s)
	sales := newSalesUC(s)
	wastage := newWastageUC(s)

	// Two purchases at different prices: 100kg @ 3500 then 50kg @ 4100
	// average to 3700.
	_, err := materials.Restock(ctx, "ops@nyamoya.co.tz", "peanuts", dto.RestockRequest{
		Quantity: dec("100"), UnitPrice: dec("3500"),
	})
	require.NoError(t, err)
	m, err := materials.Restock(ctx, "ops@nyamoya.co.tz", "peanuts", dto.RestockRequest{
		Quantity: dec("50"), UnitPrice: dec("4100"),
	})
	require.NoError(t, err)
	require.True(t, m.AverageCost.Equal(dec("3700")))

	// 50kg into 100 jars: batch cost 185,000, unit cost 1,850.
	batch, err := production.RecordProduction(ctx, "ops@nyamoya.co.tz", dto.RecordProductionRequest{
		ProductID: "pb-500", Quantity: dec("100"),
		Ingredients: []dto.IngredientRequest{{MaterialID: "peanuts", Quantity: dec("50")}},
	})
	require.NoError(t, err)
	assert.True(t, batch.UnitCost.Equal(dec("1850")))
	assert.True(t, s.materials["peanuts"].CurrentStock.Equal(dec("100")))
	assert.True(t, s.products["pb-500"].AverageUnitCost.Equal(dec("1850")))

	// Sell 40 jars at catalogue price: COGS carries the production cost.
	sale, err := sales.RecordSale(ctx, "shop@nyamoya.co.tz", dto.RecordSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: "pb-500", Quantity: dec("40")}},
	})
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(dec("240000")))
	assert.True(t, sale.TotalCost.Equal(dec("74000")))

	// Write off 2 jars; loss valued at the same average cost.
	waste, err := wastage.ReportWastage(ctx, "ops@nyamoya.co.tz", dto.ReportWastageRequest{
		ItemType: entity.WastageItemFinished, ItemID: "pb-500",
		Quantity: dec("2"), Reason: "seal failure",
	})
	require.NoError(t, err)
	assert.True(t, waste.LossValue.Equal(dec("3700")))

	// Conservation: 100 produced, 40 sold, 2 wasted.
	p := s.products["pb-500"]
	assert.True(t, p.CurrentStock.Equal(dec("58")))
	assert.True(t, p.AverageUnitCost.Equal(dec("1850")), "cost never moved by sell or waste")

	// Three correlated expenses: two restocks and one wastage.
	var rawCount, wasteCount int
	for _, e := range s.expenses {
		switch e.Category {
		case entity.ExpenseRawMaterials:
			rawCount++
		case entity.ExpenseWastage:
			wasteCount++
		}
	}
	assert.Equal(t, 2, rawCount)
	assert.Equal(t, 1, wasteCount)
}
