package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest one cart line for a sale.
type SaleItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	// UnitPrice overrides the catalogue price for this line when set.
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

// RecordSaleRequest body for POST /api/sales. ManualTotal lets the operator
// override the computed total (negotiated bulk prices); the computed
// subtotal is still stored.
type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	PaymentMethod string            `json:"payment_method"`
	CustomerID    string            `json:"customer_id,omitempty"`
	CustomerName  string            `json:"customer_name,omitempty"`
	ManualTotal   *decimal.Decimal  `json:"manual_total,omitempty"`
	OperationID   string            `json:"operation_id,omitempty"`
}

// SaleItemDTO one line of a sale response.
type SaleItemDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse output for a recorded sale. Subtotal and TotalAmount differ
// when the operator overrode the computed figure.
type SaleResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id,omitempty"`
	CustomerName  string          `json:"customer_name"`
	PaymentMethod string          `json:"payment_method"`
	Items         []SaleItemDTO   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Date          time.Time       `json:"date"`
}
