package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.ProductionBatchRepository = (*ProductionBatchRepo)(nil)

// ProductionBatchRepo implements ProductionBatchRepository over PostgreSQL.
// Batches and their ingredient snapshots are append-only.
type ProductionBatchRepo struct {
	q Querier
}

// NewProductionBatchRepository builds the batch adapter. Pass pool or tx.
func NewProductionBatchRepository(q Querier) *ProductionBatchRepo {
	return &ProductionBatchRepo{q: q}
}

const batchColumns = `id, batch_number, product_id, quantity_produced, total_cost, unit_cost, operation_id, date, created_at, created_by`

// Create inserts the batch header plus its ingredient snapshot rows.
// A replayed operation_id surfaces ErrDuplicateOperation.
func (r *ProductionBatchRepo) Create(batch *entity.ProductionBatch) error {
	query := `
		INSERT INTO production_batches (id, batch_number, product_id, quantity_produced, total_cost, unit_cost, operation_id, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.BatchNumber, batch.ProductID, batch.QuantityProduced,
		batch.TotalCost, batch.UnitCost, batch.OperationID, batch.Date,
		batch.CreatedAt, batch.CreatedBy,
	)
	if err != nil {
		if isOperationIDViolation(err) {
			return domain.ErrDuplicateOperation
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production batch: %w", err)
	}

	for _, ing := range batch.Ingredients {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO batch_ingredients (id, batch_id, material_id, name, unit, quantity, unit_cost, line_cost)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			ing.ID, batch.ID, ing.MaterialID, ing.Name, ing.Unit, ing.Quantity, ing.UnitCost, ing.LineCost,
		)
		if err != nil {
			return fmt.Errorf("insert batch ingredient: %w", err)
		}
	}
	return nil
}

// GetByID fetches a batch with its ingredients; nil when missing.
func (r *ProductionBatchRepo) GetByID(id string) (*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches WHERE id = $1`
	b, err := scanBatch(r.q.QueryRow(context.Background(), query, id))
	if err != nil || b == nil {
		return b, err
	}
	if err := r.loadIngredients(b); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns batches newest first, ingredients included.
func (r *ProductionBatchRepo) List(limit, offset int) ([]*entity.ProductionBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM production_batches ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range list {
		if err := r.loadIngredients(b); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *ProductionBatchRepo) loadIngredients(b *entity.ProductionBatch) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, batch_id, material_id, name, unit, quantity, unit_cost, line_cost
		FROM batch_ingredients WHERE batch_id = $1 ORDER BY name ASC`, b.ID)
	if err != nil {
		return fmt.Errorf("list batch ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ing entity.BatchIngredient
		if err := rows.Scan(&ing.ID, &ing.BatchID, &ing.MaterialID, &ing.Name, &ing.Unit, &ing.Quantity, &ing.UnitCost, &ing.LineCost); err != nil {
			return fmt.Errorf("scan batch ingredient: %w", err)
		}
		b.Ingredients = append(b.Ingredients, ing)
	}
	return rows.Err()
}

func scanBatch(row pgx.Row) (*entity.ProductionBatch, error) {
	var b entity.ProductionBatch
	var opID *string
	err := row.Scan(
		&b.ID, &b.BatchNumber, &b.ProductID, &b.QuantityProduced, &b.TotalCost,
		&b.UnitCost, &opID, &b.Date, &b.CreatedAt, &b.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan production batch: %w", err)
	}
	if opID != nil {
		b.OperationID = *opID
	}
	return &b, nil
}
