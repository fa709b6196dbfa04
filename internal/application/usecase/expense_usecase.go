package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
)

// ExpenseUseCase captures manual expenses (rent, salaries, transport...)
// and owner capital entries. Restock and wastage expenses are emitted by
// the costing engine, not here.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
	capitalRepo repository.CapitalRepository
	audit       costing.Auditor
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository, capitalRepo repository.CapitalRepository, audit costing.Auditor) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo, capitalRepo: capitalRepo, audit: audit}
}

// CreateExpense records one manual expense entry.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, userEmail string, in dto.CreateExpenseRequest) (*entity.Expense, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		Description: description,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userEmail,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	uc.audit.Record(userEmail, "Recorded Expense",
		fmt.Sprintf("%s (%s): TZS %s", description, in.Category, in.Amount.Round(0)))
	return expense, nil
}

// ListExpenses returns expenses, newest first.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context, limit, offset int) ([]*entity.Expense, error) {
	return uc.expenseRepo.List(limit, offset)
}

// CreateCapitalEntry records owner money in or out of the business.
func (uc *ExpenseUseCase) CreateCapitalEntry(ctx context.Context, userEmail string, in dto.CreateCapitalEntryRequest) (*entity.CapitalEntry, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.CapitalInjection && in.Type != entity.CapitalDrawing {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	entry := &entity.CapitalEntry{
		ID:          uuid.New().String(),
		Description: description,
		Type:        in.Type,
		Amount:      in.Amount,
		Date:        date,
		CreatedAt:   now,
		CreatedBy:   userEmail,
	}
	if err := uc.capitalRepo.Create(entry); err != nil {
		return nil, err
	}
	uc.audit.Record(userEmail, "Capital Entry",
		fmt.Sprintf("%s: %s TZS %s", in.Type, description, in.Amount.Round(0)))
	return entry, nil
}
