package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionBatch is an append-only record of one production run. Once
// written it is immutable: its TotalCost is the value that was rolled into
// the product's weighted average at the time, and the ingredient snapshots
// keep the material costs as they were when consumed.
type ProductionBatch struct {
	ID               string
	BatchNumber      string
	ProductID        string
	QuantityProduced decimal.Decimal
	TotalCost        decimal.Decimal // Σ ingredient qty × unit cost at time of use
	UnitCost         decimal.Decimal // TotalCost / QuantityProduced
	Ingredients      []BatchIngredient
	OperationID      string // client-generated idempotency key, optional
	Date             time.Time
	CreatedAt        time.Time
	CreatedBy        string
}

// BatchIngredient snapshots one raw-material consumption inside a batch.
// UnitCost is the material's average cost read before the deduction.
type BatchIngredient struct {
	ID         string
	BatchID    string
	MaterialID string
	Name       string
	Unit       string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	LineCost   decimal.Decimal // Quantity × UnitCost
}
