package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the point of sale.
const (
	PaymentCash   = "Cash"
	PaymentMobile = "Mobile Money"
	PaymentBank   = "Bank Transfer"
	PaymentCredit = "Credit"
)

// Sale is an append-only sales record. Subtotal is the computed
// Σ qty × unit price; TotalAmount is what was actually charged; operators
// may override the computed figure when negotiating, and both values are
// kept so the divergence stays auditable.
type Sale struct {
	ID            string
	CustomerID    string // empty for walk-in customers
	CustomerName  string
	PaymentMethod string
	Items         []SaleItem
	Subtotal      decimal.Decimal // computed revenue
	TotalAmount   decimal.Decimal // final revenue (manual override allowed)
	TotalCost     decimal.Decimal // Σ qty × cost per unit at sale (COGS)
	OperationID   string
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}

// SaleItem is one line of a sale with price and cost snapshotted at the
// moment of sale.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal // price at sale
	UnitCost  decimal.Decimal // product average unit cost at sale
	LineTotal decimal.Decimal // Quantity × UnitPrice
}
