package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientRequest one raw-material consumption inside a production batch.
type IngredientRequest struct {
	MaterialID string          `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// RecordProductionRequest body for POST /api/production.
// BatchNumber is generated when blank.
type RecordProductionRequest struct {
	ProductID   string              `json:"product_id" validate:"required"`
	BatchNumber string              `json:"batch_number,omitempty"`
	Quantity    decimal.Decimal     `json:"quantity"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"required,min=1"`
	OperationID string              `json:"operation_id,omitempty"`
}

// BatchIngredientDTO ingredient snapshot in a batch response.
type BatchIngredientDTO struct {
	MaterialID string          `json:"material_id"`
	Name       string          `json:"name"`
	Unit       string          `json:"unit"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	LineCost   decimal.Decimal `json:"line_cost"`
}

// ProductionBatchResponse output for a recorded batch.
type ProductionBatchResponse struct {
	ID               string               `json:"id"`
	BatchNumber      string               `json:"batch_number"`
	ProductID        string               `json:"product_id"`
	QuantityProduced decimal.Decimal      `json:"quantity_produced"`
	TotalCost        decimal.Decimal      `json:"total_cost"`
	UnitCost         decimal.Decimal      `json:"unit_cost"`
	Ingredients      []BatchIngredientDTO `json:"ingredients"`
	Date             time.Time            `json:"date"`
}
