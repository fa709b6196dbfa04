package http

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/application/usecase"
)

// exportLimit caps a single CSV export.
const exportLimit = 10000

// ExportHandler streams CSV exports of the sales and expense logs
// (protected). Spreadsheets are how the figures leave the system.
type ExportHandler struct {
	sales    *costing.SalesUseCase
	expenses *usecase.ExpenseUseCase
}

// NewExportHandler builds the handler.
func NewExportHandler(sales *costing.SalesUseCase, expenses *usecase.ExpenseUseCase) *ExportHandler {
	return &ExportHandler{sales: sales, expenses: expenses}
}

// SalesCSV godoc
// @Summary      Export sales as CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/exports/sales.csv [get]
func (h *ExportHandler) SalesCSV(c *fiber.Ctx) error {
	sales, err := h.sales.List(c.Context(), exportLimit, 0)
	if err != nil {
		return domainError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "customer", "payment_method", "items", "subtotal", "total_amount", "total_cost"})
	for _, s := range sales {
		_ = w.Write([]string{
			s.Date.Format("2006-01-02 15:04"),
			s.CustomerName,
			s.PaymentMethod,
			strconv.Itoa(len(s.Items)),
			s.Subtotal.Round(0).String(),
			s.TotalAmount.Round(0).String(),
			s.TotalCost.Round(0).String(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	return c.Send(buf.Bytes())
}

// ExpensesCSV godoc
// @Summary      Export expenses as CSV
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/exports/expenses.csv [get]
func (h *ExportHandler) ExpensesCSV(c *fiber.Ctx) error {
	expenses, err := h.expenses.ListExpenses(c.Context(), exportLimit, 0)
	if err != nil {
		return domainError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "description", "category", "amount", "supplier"})
	for _, e := range expenses {
		_ = w.Write([]string{
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Category,
			e.Amount.Round(0).String(),
			e.SupplierName,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	return c.Send(buf.Bytes())
}
