package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nyamoya/erp-backend/internal/domain/costing"
)

func d(s string) decimal.Decimal {
	out, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

func TestWeightedAverage(t *testing.T) {
	cases := []struct {
		name                       string
		stock, cost, inQty, inCost string
		want                       string
	}{
		{"blends both lots", "100", "3500", "50", "4100", "3700"},
		{"batch roll-up into finished goods", "10", "100", "5", "130", "110"},
		{"empty ledger takes inbound cost", "0", "0", "40", "3600", "3600"},
		{"inbound at same cost is a no-op", "80", "2500", "20", "2500", "2500"},
		{"large lot dominates", "1000", "1000", "10", "2000", "1009.9009900990099010"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := costing.WeightedAverage(d(tc.stock), d(tc.cost), d(tc.inQty), d(tc.inCost))
			want := d(tc.want)
			diff := got.Sub(want).Abs()
			assert.True(t, diff.LessThan(d("0.000000000001")), "got %s want %s", got, want)
		})
	}
}

func TestWeightedAverageZeroSumGuard(t *testing.T) {
	// Zero combined quantity must not divide; the inbound cost is the
	// fresh baseline.
	got := costing.WeightedAverage(d("0"), d("500"), d("0"), d("4200"))
	assert.True(t, got.Equal(d("4200")))
}

func TestWeightedAverageSequential(t *testing.T) {
	// Receiving in two steps lands on the same average as one combined
	// receipt of the same goods.
	stepCost := costing.WeightedAverage(d("0"), d("0"), d("100"), d("3500"))
	stepCost = costing.WeightedAverage(d("100"), stepCost, d("50"), d("4100"))

	oneShot := d("100").Mul(d("3500")).Add(d("50").Mul(d("4100"))).Div(d("150"))
	assert.True(t, stepCost.Equal(oneShot), "step %s one-shot %s", stepCost, oneShot)
}

func TestRoundCurrency(t *testing.T) {
	assert.True(t, costing.RoundCurrency(d("3146.666")).Equal(d("3147")))
	assert.True(t, costing.RoundCurrency(d("3146.4")).Equal(d("3146")))
	assert.True(t, costing.RoundCurrency(d("3146.5")).Equal(d("3147")))
	assert.True(t, costing.RoundCurrency(d("-10.5")).Equal(d("-11")))
}
