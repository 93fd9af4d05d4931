package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
)

// SyncResult contains the result of a reconciliation pass
type SyncResult struct {
	Stats   *domain.SyncStats
	Message string
}

// SyncCommand reconciles dirty categories, or every category when Force is set
type SyncCommand struct {
	reconciler *application.Reconciler
	auditor    *application.Auditor
	Force      bool
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(reconciler *application.Reconciler, auditor *application.Auditor, force bool) *SyncCommand {
	return &SyncCommand{
		reconciler: reconciler,
		auditor:    auditor,
		Force:      force,
	}
}

// Execute runs the sync command
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	var (
		stats *domain.SyncStats
		err   error
	)
	if c.Force {
		stats, err = c.reconciler.ForceFullSync()
	} else {
		stats, err = c.reconciler.EnsureConsistent()
	}
	if err != nil {
		return nil, fmt.Errorf("sync failed: %w", err)
	}

	if len(stats.Categories) == 0 {
		return &SyncResult{Stats: stats, Message: "Everything is up to date"}, nil
	}

	summary := fmt.Sprintf("categories=%d records=%d rewritten=%d pruned=%d adopted=%d",
		len(stats.Categories), stats.RecordsScanned, stats.RecordsRewritten,
		stats.EntriesPruned, stats.EntriesAdopted)

	c.auditor.Record(ctx, domain.AuditEvent{
		Action: domain.ActionSync,
		Detail: summary,
	})

	message := fmt.Sprintf("Synced %d categories (%d records, %d rewritten, %d pruned, %d adopted)",
		len(stats.Categories), stats.RecordsScanned, stats.RecordsRewritten,
		stats.EntriesPruned, stats.EntriesAdopted)
	return &SyncResult{Stats: stats, Message: message}, nil
}
