package repository

import (
	"context"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
)

// AuditLogRepository defines the persistence port for audit entries.
// Create takes a context because the audit recorder writes outside the
// business transaction, on its own deadline.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error)
}
