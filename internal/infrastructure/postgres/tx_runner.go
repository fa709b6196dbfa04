package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/domain"
)

var _ costing.TxRunner = (*TxRunner)(nil)

const maxTxAttempts = 3

// TxRunner executes callbacks inside a PostgreSQL transaction with all
// ledger repositories bound to the tx. Row locks come from the repos'
// GetForUpdate; deadlocks between concurrent multi-row operations are
// retried on a fresh transaction a bounded number of times.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with tx-bound repos and commits, or
// rolls back on any error. Everything fn writes becomes visible atomically.
func (r *TxRunner) Run(ctx context.Context, fn func(repos costing.TxRepos) error) error {
	var lastErr error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, lastErr)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(repos costing.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := costing.TxRepos{
		Materials: NewRawMaterialRepository(tx),
		Products:  NewProductRepository(tx),
		Batches:   NewProductionBatchRepository(tx),
		Sales:     NewSaleRepository(tx),
		Expenses:  NewExpenseRepository(tx),
		Wastage:   NewWastageRepository(tx),
		Customers: NewCustomerRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
