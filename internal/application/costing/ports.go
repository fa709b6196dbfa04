package costing

import (
	"context"

	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// TxRepos bundles the repositories bound to one database transaction.
// Everything the engine touches inside a mutating operation goes through
// these, so a failure anywhere rolls back the whole unit.
type TxRepos struct {
	Materials repository.RawMaterialRepository
	Products  repository.ProductRepository
	Batches   repository.ProductionBatchRepository
	Sales     repository.SaleRepository
	Expenses  repository.ExpenseRepository
	Wastage   repository.WastageRepository
	Customers repository.CustomerRepository
}

// TxRunner runs fn inside a database transaction, passing repositories
// bound to that tx. It guarantees atomicity for the costing engine: the
// implementation commits when fn returns nil and rolls back otherwise,
// retrying a bounded number of times on serialization conflicts.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}

// Auditor receives one entry per mutating operation. Implementations are
// fire-and-forget: they must never block or fail the business operation.
type Auditor interface {
	Record(user, action, details string)
}
