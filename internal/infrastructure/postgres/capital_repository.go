package postgres

import (
	"context"
	"fmt"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.CapitalRepository = (*CapitalRepo)(nil)

// CapitalRepo implements CapitalRepository over PostgreSQL.
type CapitalRepo struct {
	q Querier
}

// NewCapitalRepository builds the capital adapter. Pass pool or tx.
func NewCapitalRepository(q Querier) *CapitalRepo {
	return &CapitalRepo{q: q}
}

// Create inserts a capital entry.
func (r *CapitalRepo) Create(entry *entity.CapitalEntry) error {
	query := `
		INSERT INTO capital_entries (id, description, type, amount, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Description, entry.Type, entry.Amount,
		entry.Date, entry.CreatedAt, entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert capital entry: %w", err)
	}
	return nil
}

// List returns capital entries newest first with pagination.
func (r *CapitalRepo) List(limit, offset int) ([]*entity.CapitalEntry, error) {
	query := `
		SELECT id, description, type, amount, date, created_at, created_by
		FROM capital_entries ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list capital entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CapitalEntry
	for rows.Next() {
		var e entity.CapitalEntry
		if err := rows.Scan(&e.ID, &e.Description, &e.Type, &e.Amount, &e.Date, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan capital entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
