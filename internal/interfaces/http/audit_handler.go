package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nyamoya/erp-backend/internal/application/audit"
	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// AuditHandler serves the audit trail screen (admin only).
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler builds the handler.
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// auditLogDTO audit entry output.
type auditLogDTO struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	CreatedAt string `json:"created_at"`
}

// ListRecent godoc
// @Summary      Recent audit entries
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "row count (default 50, max 200)"
// @Success      200  {array}  http.auditLogDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) ListRecent(c *fiber.Ctx) error {
	entries, err := h.recorder.ListRecent(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		return domainError(c, err)
	}
	out := make([]auditLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAuditLogDTO(e))
	}
	return c.JSON(out)
}

func toAuditLogDTO(e *entity.AuditLog) auditLogDTO {
	return auditLogDTO{
		ID:        e.ID,
		User:      e.User,
		Action:    e.Action,
		Details:   e.Details,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
