package repository

import (
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// RawMaterialRepository defines the persistence port for the raw-material
// ledger. GetForUpdate is used inside transactions to lock the row before
// recomputing stock and average cost.
type RawMaterialRepository interface {
	Create(material *entity.RawMaterial) error
	GetByID(id string) (*entity.RawMaterial, error)
	GetByName(name string) (*entity.RawMaterial, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE) until the enclosing
	// transaction commits or rolls back.
	GetForUpdate(id string) (*entity.RawMaterial, error)
	UpdateStockAndCost(id string, stock, avgCost decimal.Decimal) error
	List(limit, offset int) ([]*entity.RawMaterial, error)
}
