package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportWastageRequest body for POST /api/wastage.
type ReportWastageRequest struct {
	ItemType    string          `json:"item_type" validate:"required,oneof=raw finished"`
	ItemID      string          `json:"item_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason" validate:"required"`
	OperationID string          `json:"operation_id,omitempty"`
}

// WastageResponse output for a recorded loss.
type WastageResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"item_type"`
	ItemID    string          `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LossValue decimal.Decimal `json:"loss_value"`
	CreatedAt time.Time       `json:"created_at"`
}
