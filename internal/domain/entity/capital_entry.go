package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Capital entry types for the cash book.
const (
	CapitalInjection = "injection"
	CapitalDrawing   = "drawing"
)

// CapitalEntry records owner money moving in or out of the business,
// shown alongside sales and expenses in the cash book.
type CapitalEntry struct {
	ID          string
	Description string
	Type        string // "injection" | "drawing"
	Amount      decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string
}
