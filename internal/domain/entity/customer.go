package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a reference entity for bulk buyers. TotalSpent is an
// aggregate bumped when a sale references the customer; it has no costing
// role.
type Customer struct {
	ID         string
	Name       string
	Phone      string
	Location   string
	TotalSpent decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
