package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/application/usecase"
	"github.com/nyamoya/erp-backend/internal/domain"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

type memExpenses struct {
	created []*entity.Expense
}

func (r *memExpenses) Create(e *entity.Expense) error {
	cp := *e
	r.created = append(r.created, &cp)
	return nil
}

func (r *memExpenses) List(limit, offset int) ([]*entity.Expense, error) {
	return r.created, nil
}

type memCapital struct {
	created []*entity.CapitalEntry
}

func (r *memCapital) Create(e *entity.CapitalEntry) error {
	cp := *e
	r.created = append(r.created, &cp)
	return nil
}

func (r *memCapital) List(limit, offset int) ([]*entity.CapitalEntry, error) {
	return r.created, nil
}

type nopAuditor struct{}

func (nopAuditor) Record(user, action, details string) {}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateExpense(t *testing.T) {
	expenses := &memExpenses{}
	uc := usecase.NewExpenseUseCase(expenses, &memCapital{}, nopAuditor{})

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	e, err := uc.CreateExpense(context.Background(), "ops@nyamoya.co.tz", dto.CreateExpenseRequest{
		Description: "March shop rent",
		Category:    entity.ExpenseRent,
		Amount:      dec("200000"),
		Date:        &date,
	})
	require.NoError(t, err)
	assert.Equal(t, date, e.Date)
	assert.Equal(t, "ops@nyamoya.co.tz", e.CreatedBy)
	require.Len(t, expenses.created, 1)
}

func TestCreateExpenseValidation(t *testing.T) {
	uc := usecase.NewExpenseUseCase(&memExpenses{}, &memCapital{}, nopAuditor{})

	cases := []dto.CreateExpenseRequest{
		{Description: "  ", Category: entity.ExpenseRent, Amount: dec("1000")},
		{Description: "rent", Category: entity.ExpenseRent, Amount: dec("-1")},
		{Description: "rent", Category: "Bribes", Amount: dec("1000")},
	}
	for _, in := range cases {
		_, err := uc.CreateExpense(context.Background(), "ops@nyamoya.co.tz", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateCapitalEntry(t *testing.T) {
	capital := &memCapital{}
	uc := usecase.NewExpenseUseCase(&memExpenses{}, capital, nopAuditor{})

	entry, err := uc.CreateCapitalEntry(context.Background(), "owner@nyamoya.co.tz", dto.CreateCapitalEntryRequest{
		Description: "opening float",
		Type:        entity.CapitalInjection,
		Amount:      dec("500000"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CapitalInjection, entry.Type)
	require.Len(t, capital.created, 1)

	_, err = uc.CreateCapitalEntry(context.Background(), "owner@nyamoya.co.tz", dto.CreateCapitalEntryRequest{
		Description: "loan", Type: "loan", Amount: dec("1000"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateCapitalEntry(context.Background(), "owner@nyamoya.co.tz", dto.CreateCapitalEntryRequest{
		Description: "zero", Type: entity.CapitalDrawing, Amount: dec("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
