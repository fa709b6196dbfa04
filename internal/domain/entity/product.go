package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a finished good in the catalogue (jars of peanut butter,
// bottles of oil). AverageUnitCost is the weighted average over all
// production batches plus any opening balance; sales and wastage reduce
// CurrentStock but must never alter it.
type Product struct {
	ID              string
	Name            string
	Price           decimal.Decimal // selling price per unit
	CurrentStock    decimal.Decimal
	AverageUnitCost decimal.Decimal // production cost per unit, weighted average
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
