package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest input for a manually captured expense.
type CreateExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date,omitempty"` // defaults to now
}

// ExpenseResponse output for an expense entry.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Amount       decimal.Decimal `json:"amount"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Date         time.Time       `json:"date"`
}

// CreateCapitalEntryRequest input for a capital injection or drawing.
type CreateCapitalEntryRequest struct {
	Description string          `json:"description" validate:"required"`
	Type        string          `json:"type" validate:"required,oneof=injection drawing"`
	Amount      decimal.Decimal `json:"amount"`
	Date        *time.Time      `json:"date,omitempty"`
}
