package repository

import (
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// CustomerRepository defines the persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// AddToTotalSpent bumps the aggregate spend; called inside the sale tx.
	AddToTotalSpent(id string, amount decimal.Decimal) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
