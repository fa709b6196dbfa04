package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial is the authoritative stock+cost ledger row for one input
// material (peanuts, jars, labels, cooking oil...).
// AverageCost is the quantity-weighted mean over all inbound purchases;
// consumption by production deducts stock only and never touches it.
type RawMaterial struct {
	ID           string
	Name         string
	Unit         string // "kg", "ltr", "pcs"
	CurrentStock decimal.Decimal
	AverageCost  decimal.Decimal // cost per unit, weighted average
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
