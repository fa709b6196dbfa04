package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/application/reporting"
)

// FinancialReportGenerator renders the period P&L as a PDF.
type FinancialReportGenerator interface {
	GenerateFinancialReport(ctx context.Context, report *dto.FinancialsResponse) ([]byte, error)
}

// ReportHandler handles the reporting routes (protected).
type ReportHandler struct {
	financials *reporting.FinancialsUseCase
	valuation  *reporting.ValuationUseCase
	cashBook   *reporting.CashBookUseCase
	pdfGen     FinancialReportGenerator
}

// NewReportHandler builds the handler.
func NewReportHandler(
	financials *reporting.FinancialsUseCase,
	valuation *reporting.ValuationUseCase,
	cashBook *reporting.CashBookUseCase,
	pdfGen FinancialReportGenerator,
) *ReportHandler {
	return &ReportHandler{financials: financials, valuation: valuation, cashBook: cashBook, pdfGen: pdfGen}
}

// periodBounds resolves the period query params into concrete bounds.
func periodBounds(c *fiber.Ctx) (time.Time, time.Time, error) {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// The end date is inclusive for the caller; the half-open bound
		// is midnight of the following day.
		t = t.Add(24 * time.Hour)
		end = &t
	}
	return reporting.ResolvePeriod(c.Query("period"), start, end, time.Now())
}

// Financials godoc
// @Summary      Profit & loss summary
// @Description  Revenue, COGS, operating expenses and wastage loss for the
// @Description  period. Raw-material purchases and wastage expenses are
// @Description  excluded from the expense line to avoid double counting.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today|month|all|custom (default today)"
// @Param        start   query  string  false  "custom period start (YYYY-MM-DD)"
// @Param        end     query  string  false  "custom period end (YYYY-MM-DD)"
// @Success      200  {object}  dto.FinancialsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/financials [get]
func (h *ReportHandler) Financials(c *fiber.Ctx) error {
	start, end, err := periodBounds(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period"})
	}
	report, err := h.financials.ComputeFinancials(c.Context(), start, end)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(report)
}

// FinancialsPDF godoc
// @Summary      Download P&L summary as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "today|month|all|custom (default today)"
// @Param        start   query  string  false  "custom period start (YYYY-MM-DD)"
// @Param        end     query  string  false  "custom period end (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/financials/pdf [get]
func (h *ReportHandler) FinancialsPDF(c *fiber.Ctx) error {
	start, end, err := periodBounds(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period"})
	}
	report, err := h.financials.ComputeFinancials(c.Context(), start, end)
	if err != nil {
		return domainError(c, err)
	}
	pdfBytes, err := h.pdfGen.GenerateFinancialReport(c.Context(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="financial-report.pdf"`)
	return c.Send(pdfBytes)
}

// TopProducts godoc
// @Summary      Best-selling products
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today|month|all|custom (default today)"
// @Param        limit   query  int     false  "row count (default 5)"
// @Success      200  {array}  dto.TopProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	start, end, err := periodBounds(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period"})
	}
	rows, err := h.financials.TopProducts(c.Context(), start, end, c.QueryInt("limit", 5))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(rows)
}

// Valuation godoc
// @Summary      Inventory valuation
// @Description  Both ledgers valued at current average cost.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationResponse
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.valuation.InventoryValuation(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Low stock materials
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  number  false  "reorder threshold (default 10)"
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	var threshold *decimal.Decimal
	if s := c.Query("threshold"); s != "" {
		t, err := decimal.NewFromString(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid threshold"})
		}
		threshold = &t
	}
	items, err := h.valuation.LowStockMaterials(c.Context(), threshold)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// CashBook godoc
// @Summary      Cash book
// @Description  Sales, expenses and capital entries merged into one
// @Description  chronological stream with a running balance.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today|month|all|custom (default today)"
// @Param        start   query  string  false  "custom period start (YYYY-MM-DD)"
// @Param        end     query  string  false  "custom period end (YYYY-MM-DD)"
// @Success      200  {object}  dto.CashBookResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/cash-book [get]
func (h *ReportHandler) CashBook(c *fiber.Ctx) error {
	start, end, err := periodBounds(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid period"})
	}
	out, err := h.cashBook.CashBook(c.Context(), start, end)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
