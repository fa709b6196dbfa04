package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest input for a new customer.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// CustomerResponse customer output.
type CustomerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Location   string          `json:"location"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CreateSupplierRequest input for a new supplier.
type CreateSupplierRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Phone    string `json:"phone"`
	Supplies string `json:"supplies"`
}

// SupplierResponse supplier output.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Supplies  string    `json:"supplies"`
	CreatedAt time.Time `json:"created_at"`
}
