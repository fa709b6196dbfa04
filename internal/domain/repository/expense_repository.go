package repository

import "github.com/nyamoya/erp-backend/internal/domain/entity"

// ExpenseRepository defines the persistence port for the expense log.
// Restock and wastage emit correlated entries through it inside the same
// transaction as the ledger mutation.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	List(limit, offset int) ([]*entity.Expense, error)
}
