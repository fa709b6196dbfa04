package repository

import (
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// ProductRepository defines the persistence port for the finished-goods
// ledger (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	// GetForUpdate locks the row (SELECT FOR UPDATE) for the enclosing tx.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStockAndCost is used by production (stock and average move together).
	UpdateStockAndCost(id string, stock, avgUnitCost decimal.Decimal) error
	// UpdateStock is used by sale and wastage deductions; average cost is
	// deliberately not touchable through this method.
	UpdateStock(id string, stock decimal.Decimal) error
	UpdatePrice(id string, price decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
}
