// Package audit implements the fire-and-forget audit sink: one entry per
// mutating operation, written outside the business transaction. A failed
// audit write is logged locally and swallowed; it must never block or
// fail the operation it describes.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nyamoya/erp-backend/internal/domain/entity"
	"github.com/nyamoya/erp-backend/internal/domain/repository"
	"github.com/nyamoya/erp-backend/pkg/logger"
)

// writeTimeout bounds the detached audit insert.
const writeTimeout = 5 * time.Second

// Recorder persists audit entries on a detached goroutine.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder builds the recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record queues one audit entry. Returns immediately; the insert runs on
// its own context so a caller's cancelled request never loses the entry.
func (r *Recorder) Record(user, action, details string) {
	if user == "" {
		user = "Unknown"
	}
	entry := &entity.AuditLog{
		ID:        uuid.New().String(),
		User:      user,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := r.repo.Create(ctx, entry); err != nil {
			r.log.Warn().Err(err).
				Str("action", action).
				Str("user", user).
				Msg("audit write failed, entry dropped")
		}
	}()
}

// ListRecent returns the latest entries for the audit screen.
func (r *Recorder) ListRecent(ctx context.Context, limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return r.repo.ListRecent(ctx, limit)
}
