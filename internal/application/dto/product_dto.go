package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input for adding a product to the catalogue,
// optionally with opening stock at a given unit cost.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Price        decimal.Decimal `json:"price"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	OpeningCost  decimal.Decimal `json:"opening_cost"`
}

// UpdatePriceRequest body for PUT /api/products/:id/price.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductResponse output for a finished good.
type ProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	CurrentStock    decimal.Decimal `json:"current_stock"`
	AverageUnitCost decimal.Decimal `json:"average_unit_cost"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
