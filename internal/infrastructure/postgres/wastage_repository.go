package postgres

import (
	"context"
	"fmt"

	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.WastageRepository = (*WastageRepo)(nil)

// WastageRepo implements WastageRepository over PostgreSQL.
type WastageRepo struct {
	q Querier
}

// NewWastageRepository builds the wastage adapter. Pass pool or tx.
func NewWastageRepository(q Querier) *WastageRepo {
	return &WastageRepo{q: q}
}

// Create inserts a wastage row. A replayed operation_id surfaces
// ErrDuplicateOperation.
func (r *WastageRepo) Create(entry *entity.WastageEntry) error {
	query := `
		INSERT INTO wastage (id, item_type, item_id, item_name, unit, quantity, reason, unit_cost, loss_value, operation_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.ItemType, entry.ItemID, entry.ItemName, entry.Unit,
		entry.Quantity, entry.Reason, entry.UnitCost, entry.LossValue,
		entry.OperationID, entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		if isOperationIDViolation(err) {
			return domain.ErrDuplicateOperation
		}
		return fmt.Errorf("insert wastage: %w", err)
	}
	return nil
}

// List returns wastage entries newest first with pagination.
func (r *WastageRepo) List(limit, offset int) ([]*entity.WastageEntry, error) {
	query := `
		SELECT id, item_type, item_id, item_name, unit, quantity, reason, unit_cost, loss_value, COALESCE(operation_id, ''), created_at, created_by
		FROM wastage ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wastage: %w", err)
	}
	defer rows.Close()
	var list []*entity.WastageEntry
	for rows.Next() {
		var w entity.WastageEntry
		if err := rows.Scan(&w.ID, &w.ItemType, &w.ItemID, &w.ItemName, &w.Unit, &w.Quantity, &w.Reason,
			&w.UnitCost, &w.LossValue, &w.OperationID, &w.CreatedAt, &w.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan wastage: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
