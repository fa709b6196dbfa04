package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period presets for reports.
const (
	PeriodToday   = "today"
	PeriodMonth   = "month"
	PeriodAllTime = "all"
	PeriodCustom  = "custom"
)

// FinancialsResponse is the period profit & loss summary. Monetary values
// are rounded to whole TZS at this boundary; margins carry two decimals.
type FinancialsResponse struct {
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	Revenue          decimal.Decimal `json:"revenue"`
	COGS             decimal.Decimal `json:"cogs"`
	Expenses         decimal.Decimal `json:"expenses"` // operating only, see reporting package
	WastageLoss      decimal.Decimal `json:"wastage_loss"`
	GrossProfit      decimal.Decimal `json:"gross_profit"`
	NetProfit        decimal.Decimal `json:"net_profit"`
	GrossMarginPct   decimal.Decimal `json:"gross_margin_pct"`
	NetMarginPct     decimal.Decimal `json:"net_margin_pct"`
	TransactionCount int             `json:"transaction_count"`
}

// TopProductDTO one best-seller row.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold decimal.Decimal `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
	MarginPct    decimal.Decimal `json:"margin_pct"`
}

// ValuationResponse is the inventory side of the balance sheet.
type ValuationResponse struct {
	RawMaterialValue  decimal.Decimal `json:"raw_material_value"`
	FinishedGoodValue decimal.Decimal `json:"finished_good_value"`
	TotalValue        decimal.Decimal `json:"total_value"`
}

// LowStockDTO one item under its reorder threshold.
type LowStockDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// CashBookLineDTO one merged cash-book row with running balance.
type CashBookLineDTO struct {
	Date        time.Time       `json:"date"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	In          decimal.Decimal `json:"in"`
	Out         decimal.Decimal `json:"out"`
	Balance     decimal.Decimal `json:"balance"`
}

// CashBookResponse the cash book for a period.
type CashBookResponse struct {
	PeriodStart time.Time         `json:"period_start"`
	PeriodEnd   time.Time         `json:"period_end"`
	Lines       []CashBookLineDTO `json:"lines"`
	TotalIn     decimal.Decimal   `json:"total_in"`
	TotalOut    decimal.Decimal   `json:"total_out"`
	NetBalance  decimal.Decimal   `json:"net_balance"`
}
