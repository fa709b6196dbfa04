package postgres

import (
	"context"
	"fmt"

	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implements ExpenseRepository over PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the expense adapter. Pass pool or tx.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create inserts an expense row. A replayed operation_id surfaces
// ErrDuplicateOperation (restock replays land here first).
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, description, category, amount, supplier_id, supplier_name, ref_type, ref_id, operation_id, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Description, expense.Category, expense.Amount,
		expense.SupplierID, expense.SupplierName, expense.RefType, expense.RefID,
		expense.OperationID, expense.Date, expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		if isOperationIDViolation(err) {
			return domain.ErrDuplicateOperation
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List returns expenses newest first with pagination.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, description, category, amount, COALESCE(supplier_id, ''), supplier_name, ref_type, ref_id, COALESCE(operation_id, ''), date, created_at, created_by
		FROM expenses ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Description, &e.Category, &e.Amount, &e.SupplierID, &e.SupplierName,
			&e.RefType, &e.RefID, &e.OperationID, &e.Date, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
