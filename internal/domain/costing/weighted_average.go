package costing

import "github.com/shopspring/decimal"

// WeightedAverage implements the weighted average cost method (domain service).
// NewCost = ((CurrentStock * CurrentCost) + (InboundQty * InboundCost)) / (CurrentStock + InboundQty)
//
// When the combined quantity is zero the inbound unit cost is returned as the
// fresh baseline, so an opening entry on an empty ledger never divides by zero.
// This is the single shared formula used by restocking and by production
// roll-up; no caller re-derives it.
func WeightedAverage(currentStock, currentCost, inboundQty, inboundCost decimal.Decimal) decimal.Decimal {
	sum := currentStock.Add(inboundQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return inboundCost
	}
	num := currentStock.Mul(currentCost).Add(inboundQty.Mul(inboundCost))
	return num.Div(sum)
}

// RoundCurrency rounds a monetary value to the smallest TZS unit (one
// shilling, half-up). Applied only at display/report boundaries; ledger
// values keep full precision so weighted averages never compound rounding
// error.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
