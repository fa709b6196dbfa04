package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// SupplierRepository defines the persistence port for suppliers.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
