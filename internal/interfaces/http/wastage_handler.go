package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// WastageHandler handles stock write-off routes (protected).
type WastageHandler struct {
	uc *costing.WastageUseCase
}

// NewWastageHandler builds the handler.
func NewWastageHandler(uc *costing.WastageUseCase) *WastageHandler {
	return &WastageHandler{uc: uc}
}

// Report godoc
// @Summary      Report wastage
// @Description  Writes off spoiled or damaged stock from either ledger,
// @Description  valued at the item's current average cost. The deduction,
// @Description  the wastage entry and the Wastage expense commit together.
// @Tags         wastage
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportWastageRequest  true  "item_type (raw|finished), item_id, quantity, reason"
// @Success      201   {object}  dto.WastageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wastage [post]
func (h *WastageHandler) Report(c *fiber.Ctx) error {
	var in dto.ReportWastageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	entry, err := h.uc.ReportWastage(c.Context(), GetUserEmail(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWastageResponse(entry))
}

// List godoc
// @Summary      List wastage entries
// @Tags         wastage
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.WastageResponse
// @Router       /api/wastage [get]
func (h *WastageHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	entries, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.WastageResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toWastageResponse(e))
	}
	return c.JSON(out)
}

func toWastageResponse(e *entity.WastageEntry) dto.WastageResponse {
	return dto.WastageResponse{
		ID:        e.ID,
		ItemType:  e.ItemType,
		ItemID:    e.ItemID,
		ItemName:  e.ItemName,
		Unit:      e.Unit,
		Quantity:  e.Quantity,
		Reason:    e.Reason,
		UnitCost:  e.UnitCost,
		LossValue: e.LossValue,
		CreatedAt: e.CreatedAt,
	}
}
