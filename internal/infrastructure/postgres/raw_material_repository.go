package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implements RawMaterialRepository over PostgreSQL
// (usable with pool or tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository builds the raw-material adapter. Pass pool or tx.
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, name, unit, current_stock, average_cost, created_at, updated_at`

// Create inserts a new material row.
func (r *RawMaterialRepo) Create(material *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (id, name, unit, current_stock, average_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.Name, material.Unit, material.CurrentStock,
		material.AverageCost, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

// GetByID fetches one material; nil when missing.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	return r.getWhere(`id = $1`, id, "")
}

// GetByName fetches one material by its unique name; nil when missing.
func (r *RawMaterialRepo) GetByName(name string) (*entity.RawMaterial, error) {
	return r.getWhere(`lower(name) = lower($1)`, name, "")
}

// GetForUpdate fetches the row and holds a row lock until the enclosing
// transaction ends.
func (r *RawMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	return r.getWhere(`id = $1`, id, " FOR UPDATE")
}

func (r *RawMaterialRepo) getWhere(cond, arg, suffix string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE ` + cond + suffix
	var m entity.RawMaterial
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&m.ID, &m.Name, &m.Unit, &m.CurrentStock, &m.AverageCost, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

// UpdateStockAndCost writes stock and average cost together. Restock moves
// both; consumption rewrites the cost unchanged.
func (r *RawMaterialRepo) UpdateStockAndCost(id string, stock, avgCost decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE raw_materials SET current_stock = $2, average_cost = $3, updated_at = now() WHERE id = $1`,
		id, stock, avgCost,
	)
	if err != nil {
		return fmt.Errorf("update raw material stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns materials ordered by name with pagination.
func (r *RawMaterialRepo) List(limit, offset int) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.CurrentStock, &m.AverageCost, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
