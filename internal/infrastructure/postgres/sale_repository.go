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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implements SaleRepository over PostgreSQL. Sales and their
// items are append-only.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository builds the sales adapter. Pass pool or tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, customer_name, payment_method, subtotal, total_amount, total_cost, operation_id, date, created_at, created_by`

// Create inserts the sale header plus its item rows. A replayed
// operation_id surfaces ErrDuplicateOperation.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, customer_name, payment_method, subtotal, total_amount, total_cost, operation_id, date, created_at, created_by)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.CustomerName, sale.PaymentMethod,
		sale.Subtotal, sale.TotalAmount, sale.TotalCost, sale.OperationID,
		sale.Date, sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		if isOperationIDViolation(err) {
			return domain.ErrDuplicateOperation
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	for _, item := range sale.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO sale_items (id, sale_id, product_id, name, quantity, unit_price, unit_cost, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, sale.ID, item.ProductID, item.Name, item.Quantity,
			item.UnitPrice, item.UnitCost, item.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID fetches a sale with its items; nil when missing.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil || s == nil {
		return s, err
	}
	if err := r.loadItems(s); err != nil {
		return nil, err
	}
	return s, nil
}

// List returns sales newest first, items included.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		if err := r.loadItems(s); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *SaleRepo) loadItems(s *entity.Sale) error {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, product_id, name, quantity, unit_price, unit_cost, line_total
		FROM sale_items WHERE sale_id = $1 ORDER BY name ASC`, s.ID)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice, &item.UnitCost, &item.LineTotal); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, item)
	}
	return rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var customerID, opID *string
	err := row.Scan(
		&s.ID, &customerID, &s.CustomerName, &s.PaymentMethod, &s.Subtotal,
		&s.TotalAmount, &s.TotalCost, &opID, &s.Date, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	if customerID != nil {
		s.CustomerID = *customerID
	}
	if opID != nil {
		s.OperationID = *opID
	}
	return &s, nil
}
