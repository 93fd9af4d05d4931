package application

import (
	"context"
	"log/slog"
	"time"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// Auditor stamps events with the acting user and writes them to the audit log.
// A nil Auditor, or one without a log, records nothing.
type Auditor struct {
	log    ports.AuditLog
	user   string
	logger *slog.Logger
}

// NewAuditor creates an auditor writing as user
func NewAuditor(log ports.AuditLog, user string, logger *slog.Logger) *Auditor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Auditor{log: log, user: user, logger: logger}
}

// Record writes an event. Failures are logged, never returned: the mutation
// being audited has already happened.
func (a *Auditor) Record(ctx context.Context, event domain.AuditEvent) {
	if a == nil || a.log == nil {
		return
	}
	if event.User == "" {
		event.User = a.user
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	if err := a.log.Record(ctx, event); err != nil {
		a.logger.Warn("failed to record audit event", "action", event.Action, "error", err)
		return
	}
	a.logger.Debug("audit", "event", event.String())
}

// User returns the acting user
func (a *Auditor) User() string {
	if a == nil {
		return ""
	}
	return a.user
}
