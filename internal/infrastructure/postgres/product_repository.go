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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL (usable with
// pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the finished-goods adapter. Pass pool or tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, price, current_stock, average_unit_cost, created_at, updated_at`

// Create inserts a new product row.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, current_stock, average_unit_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.CurrentStock,
		product.AverageUnitCost, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches one product; nil when missing.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getWhere(`id = $1`, id, "")
}

// GetByName fetches one product by its unique name; nil when missing.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	return r.getWhere(`lower(name) = lower($1)`, name, "")
}

// GetForUpdate fetches the row and holds a row lock until the enclosing
// transaction ends.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.getWhere(`id = $1`, id, " FOR UPDATE")
}

func (r *ProductRepo) getWhere(cond, arg, suffix string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond + suffix
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.Price, &p.CurrentStock, &p.AverageUnitCost, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// UpdateStockAndCost writes stock and average unit cost together (used by
// production roll-ups).
func (r *ProductRepo) UpdateStockAndCost(id string, stock, avgUnitCost decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, average_unit_cost = $3, updated_at = now() WHERE id = $1`,
		id, stock, avgUnitCost,
	)
	if err != nil {
		return fmt.Errorf("update product stock and cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock writes stock only; sales and wastage deductions must not
// touch the average unit cost.
func (r *ProductRepo) UpdateStock(id string, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET current_stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrice changes the selling price.
func (r *ProductRepo) UpdatePrice(id string, price decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET price = $2, updated_at = now() WHERE id = $1`,
		id, price,
	)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns products ordered by name with pagination.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CurrentStock, &p.AverageUnitCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
