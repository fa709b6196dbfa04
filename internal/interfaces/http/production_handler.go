package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/costing"
	"github.com/nyamoya/erp-backend/internal/application/dto"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// ProductionHandler handles production batch routes (protected).
type ProductionHandler struct {
	uc *costing.ProductionUseCase
}

// NewProductionHandler builds the handler.
func NewProductionHandler(uc *costing.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Record godoc
// @Summary      Record production batch
// @Description  Consumes the listed raw materials at their current average
// @Description  cost, rolls the batch cost into the product's weighted
// @Description  average unit cost and adds the produced quantity, all in
// @Description  one transaction.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "product_id, quantity, ingredients, optional batch_number and operation_id"
// @Success      201   {object}  dto.ProductionBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	batch, err := h.uc.RecordProduction(c.Context(), GetUserEmail(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(batch))
}

// GetByID godoc
// @Summary      Get production batch
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "batch id"
// @Success      200  {object}  dto.ProductionBatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [get]
func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	batch, err := h.uc.GetBatch(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(toBatchResponse(batch))
}

// List godoc
// @Summary      List production batches
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "page size (default 20)"
// @Param        offset  query  int  false  "page offset"
// @Success      200  {array}  dto.ProductionBatchResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	batches, err := h.uc.ListBatches(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	out := make([]dto.ProductionBatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, toBatchResponse(b))
	}
	return c.JSON(out)
}

func toBatchResponse(b *entity.ProductionBatch) dto.ProductionBatchResponse {
	ingredients := make([]dto.BatchIngredientDTO, 0, len(b.Ingredients))
	for _, ing := range b.Ingredients {
		ingredients = append(ingredients, dto.BatchIngredientDTO{
			MaterialID: ing.MaterialID,
			Name:       ing.Name,
			Unit:       ing.Unit,
			Quantity:   ing.Quantity,
			UnitCost:   ing.UnitCost,
			LineCost:   ing.LineCost,
		})
	}
	return dto.ProductionBatchResponse{
		ID:               b.ID,
		BatchNumber:      b.BatchNumber,
		ProductID:        b.ProductID,
		QuantityProduced: b.QuantityProduced,
		TotalCost:        b.TotalCost,
		UnitCost:         b.UnitCost,
		Ingredients:      ingredients,
		Date:             b.Date,
	}
}
