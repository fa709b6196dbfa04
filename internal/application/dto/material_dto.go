package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest input for creating a raw material, optionally with
// an opening balance.
type CreateMaterialRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit" validate:"required,min=1,max=20"`
	OpeningStock decimal.Decimal `json:"opening_stock"`
	OpeningCost  decimal.Decimal `json:"opening_cost"`
}

// RestockRequest body for POST /api/materials/:id/restock.
type RestockRequest struct {
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	SupplierID  string          `json:"supplier_id,omitempty"`
	OperationID string          `json:"operation_id,omitempty"`
}

// MaterialResponse output for a raw material.
type MaterialResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	AverageCost  decimal.Decimal `json:"average_cost"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
