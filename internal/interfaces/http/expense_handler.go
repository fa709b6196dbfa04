package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/application/usecase"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// ExpenseHandler handles manual expense and capital routes (protected).
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler builds the handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Record manual expense
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "description, category, amount, optional date"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	expense, err := h.uc.CreateExpense(c.Context(), GetUserEmail(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toExpenseResponse(expense))
}

// List godoc
// @Summary      List expenses
// @Description  Includes the system-emitted Raw Materials and Wastage
// @Description  entries alongside manual ones.
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	expenses, err := h.uc.ListExpenses(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return c.JSON(out)
}

// CreateCapital godoc
// @Summary      Record capital entry
// @Tags         capital
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCapitalEntryRequest  true  "description, type (injection|drawing), amount"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/capital [post]
func (h *ExpenseHandler) CreateCapital(c *fiber.Ctx) error {
	var in dto.CreateCapitalEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	entry, err := h.uc.CreateCapitalEntry(c.Context(), GetUserEmail(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID})
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Category:     e.Category,
		Amount:       e.Amount,
		SupplierName: e.SupplierName,
		Date:         e.Date,
	}
}
