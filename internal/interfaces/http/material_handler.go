package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// MaterialHandler handles the raw-material ledger routes (protected).
type MaterialHandler struct {
	uc *costing.MaterialUseCase
}

// NewMaterialHandler builds the handler.
func NewMaterialHandler(uc *costing.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Create raw material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "name, unit, optional opening_stock and opening_cost"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	material, err := h.uc.CreateMaterial(c.Context(), GetUserEmail(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMaterialResponse(material))
}

// Restock godoc
// @Summary      Restock raw material
// @Description  Receives a purchase: adds stock, recomputes the weighted
// @Description  average cost and emits the correlated Raw Materials expense
// @Description  in one transaction.
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "material id"
// @Param        body  body  dto.RestockRequest  true  "quantity, unit_price, optional supplier_id and operation_id"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/restock [post]
func (h *MaterialHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	material, err := h.uc.Restock(c.Context(), GetUserEmail(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toMaterialResponse(material))
}

// GetByID godoc
// @Summary      Get raw material
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "material id"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	material, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toMaterialResponse(material))
}

// List godoc
// @Summary      List raw materials
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	materials, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toMaterialResponse(m))
	}
	return c.JSON(out)
}

func toMaterialResponse(m *entity.RawMaterial) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit,
		CurrentStock: m.CurrentStock,
		AverageCost:  m.AverageCost,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
