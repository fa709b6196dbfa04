package entity

import "time"

// AuditLog is one fire-and-forget audit entry per mutating operation.
// Writing it must never block or fail the business transaction.
type AuditLog struct {
	ID        string
	User      string // principal email, "Unknown" when absent
	Action    string
	Details   string
	CreatedAt time.Time
}
