package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// WastageRepository defines the persistence port for the wastage log.
type WastageRepository interface {
	Create(entry *entity.WastageEntry) error
	List(limit, offset int) ([]*entity.WastageEntry, error)
}
