package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories. Raw-material purchases and wastage write-offs land
// here as a parallel financial view of the same event the ledgers record;
// reporting must not double count them against COGS.
const (
	ExpenseOperating    = "Operating"
	ExpenseRawMaterials = "Raw Materials"
	ExpenseSalary       = "Salary"
	ExpenseTransport    = "Transport"
	ExpenseUtilities    = "Utilities"
	ExpensePackaging    = "Packaging"
	ExpenseRent         = "Rent"
	ExpenseMarketing    = "Marketing"
	ExpenseMaintenance  = "Maintenance"
	ExpenseWastage      = "Wastage"
	ExpenseOther        = "Other"
)

// ExpenseCategories lists the accepted category values.
var ExpenseCategories = []string{
	ExpenseOperating, ExpenseRawMaterials, ExpenseSalary, ExpenseTransport,
	ExpenseUtilities, ExpensePackaging, ExpenseRent, ExpenseMarketing,
	ExpenseMaintenance, ExpenseWastage, ExpenseOther,
}

// ValidExpenseCategory reports whether c is one of the accepted categories.
func ValidExpenseCategory(c string) bool {
	for _, v := range ExpenseCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Expense is an append-only financial outflow record.
// RefType/RefID correlate the entry to the ledger event that emitted it
// ("restock" → material id, "wastage" → wastage entry id); both are empty
// for manually captured expenses.
type Expense struct {
	ID           string
	Description  string
	Category     string
	Amount       decimal.Decimal
	SupplierID   string
	SupplierName string
	RefType      string
	RefID        string
	OperationID  string
	Date         time.Time
	CreatedAt    time.Time
	CreatedBy    string
}
