package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// HistoryCommand reads the most recent audit events
type HistoryCommand struct {
	audit    ports.AuditLog
	Category string // Optional filter
	Limit    int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(audit ports.AuditLog, category string, limit int) *HistoryCommand {
	return &HistoryCommand{audit: audit, Category: category, Limit: limit}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.AuditEvent, error) {
	if c.audit == nil {
		return nil, fmt.Errorf("audit trail is disabled")
	}
	if c.Category != "" {
		return c.audit.ForCategory(ctx, c.Category, c.Limit)
	}
	return c.audit.Recent(ctx, c.Limit)
}
