package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wastage item kinds: the write-off can hit either ledger.
const (
	WastageItemRaw      = "raw"
	WastageItemFinished = "finished"
)

// WastageEntry is an append-only record of involuntary stock loss
// (spoilage, breakage, burnt batches). LossValue is the quantity times the
// item's average cost at the moment of reporting; the stock deduction and
// the correlated Wastage expense are written in the same transaction.
type WastageEntry struct {
	ID          string
	ItemType    string // "raw" | "finished"
	ItemID      string
	ItemName    string
	Unit        string
	Quantity    decimal.Decimal
	Reason      string
	UnitCost    decimal.Decimal // average cost at time of reporting
	LossValue   decimal.Decimal // Quantity × UnitCost
	OperationID string
	CreatedAt   time.Time
	CreatedBy   string
}
