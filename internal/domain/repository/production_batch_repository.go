package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// ProductionBatchRepository defines the persistence port for the append-only
// production log. Batches are immutable once created: no update methods.
type ProductionBatchRepository interface {
	Create(batch *entity.ProductionBatch) error
	GetByID(id string) (*entity.ProductionBatch, error)
	List(limit, offset int) ([]*entity.ProductionBatch, error)
}
