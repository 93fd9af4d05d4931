package ports

import (
	"context"

	"sfadsms/internal/domain"
)

// AuditLog persists the audit trail of store mutations
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent) error
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
	ForCategory(ctx context.Context, category string, limit int) ([]domain.AuditEvent, error)
	Close() error
}
