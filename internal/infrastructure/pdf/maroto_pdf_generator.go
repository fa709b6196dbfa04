// Package pdf renders sale receipts and financial reports with Maroto v2.
//
// Receipt layout (A5):
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: NYAMOYA ENTERPRISES │ Receipt + Date │
//	│  ───────────────────────────────────────────  │
//	│  CUSTOMER: name + payment method              │
//	│  ───────────────────────────────────────────  │
//	│  TABLE: Qty | Item | Unit Price | Line Total  │
//	│  ───────────────────────────────────────────  │
//	│  TOTALS: Subtotal / TOTAL DUE                 │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

const (
	businessName    = "NYAMOYA ENTERPRISES"
	businessTagline = "Quality Peanut Butter & Oil"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 63, Blue: 4}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// tzs prints whole-shilling amounts with thousands separators.
var tzs = message.NewPrinter(language.English)

func formatTZS(d decimal.Decimal) string {
	return tzs.Sprintf("TZS %d", d.Round(0).IntPart())
}

// MarotoPDFGenerator renders receipts and reports using Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSaleReceipt renders a sale as an A5 receipt and returns its bytes.
func (g *MarotoPDFGenerator) GenerateSaleReceipt(_ context.Context, sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sale Receipt", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(receiptHeaderRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(sale.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRow(sale))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 3,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateFinancialReport renders the period P&L summary as an A4 page.
func (g *MarotoPDFGenerator) GenerateFinancialReport(_ context.Context, report *dto.FinancialsResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Financial Report", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(20).Add(
		col.New(8).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(businessTagline, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("FINANCIAL REPORT", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			// The period end is an exclusive bound; show the last day
			// that is actually inside the range.
			text.New(fmt.Sprintf("%s to %s",
				report.PeriodStart.Format("02/01/2006"),
				report.PeriodEnd.Add(-time.Nanosecond).Format("02/01/2006"),
			), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	figures := []struct {
		label string
		value string
		bold  bool
	}{
		{"Revenue", formatTZS(report.Revenue), false},
		{"Cost of Goods Sold", formatTZS(report.COGS), false},
		{"Gross Profit", formatTZS(report.GrossProfit), true},
		{"Operating Expenses", formatTZS(report.Expenses), false},
		{"Wastage Loss", formatTZS(report.WastageLoss), false},
		{"Net Profit", formatTZS(report.NetProfit), true},
		{"Gross Margin", report.GrossMarginPct.StringFixed(2) + "%", false},
		{"Net Margin", report.NetMarginPct.StringFixed(2) + "%", false},
		{"Transactions", fmt.Sprintf("%d", report.TransactionCount), false},
	}
	for _, f := range figures {
		style := fontstyle.Normal
		if f.bold {
			style = fontstyle.Bold
		}
		m.AddRows(row.New(9).Add(
			col.New(6).Add(text.New(f.label, props.Text{Style: style, Size: 10, Top: 2})),
			col.New(6).Add(text.New(f.value, props.Text{Style: style, Size: 10, Align: align.Right, Top: 2})),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Figures are valued at weighted average cost. Raw material purchases and wastage "+
			"are excluded from operating expenses to avoid double counting.",
			props.Text{Size: 7, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate report: %w", err)
	}
	return doc.GetBytes(), nil
}

// receiptHeaderRow: business name (left), receipt number and date (right).
func receiptHeaderRow(sale *entity.Sale) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(businessTagline, props.Text{Size: 8, Top: 8, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("SALE RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("No. "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func customerRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CUSTOMER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Paid by: %s", sale.CustomerName, sale.PaymentMethod),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Qty", 2, align.Center),
		h("Item", 5, align.Left),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				formatTZS(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				formatTZS(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func receiptTotalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right})
	}
	grandLabel := text.New("TOTAL DUE:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(formatTZS(sale.TotalAmount), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary,
	})

	return row.New(18).Add(
		col.New(4),
		col.New(4).Add(label("Subtotal:"), grandLabel),
		col.New(4).Add(value(formatTZS(sale.Subtotal)), grandValue),
	)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
