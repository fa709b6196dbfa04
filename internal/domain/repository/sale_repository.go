package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// SaleRepository defines the persistence port for the append-only sales log.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
