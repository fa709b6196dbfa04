package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// CapitalRepository defines the persistence port for capital entries.
type CapitalRepository interface {
	Create(entry *entity.CapitalEntry) error
	List(limit, offset int) ([]*entity.CapitalEntry, error)
}
