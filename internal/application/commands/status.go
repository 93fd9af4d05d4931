package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/ports"
)

// CategoryStatus summarizes one category without running a full sync
type CategoryStatus struct {
	Name    string
	Dirty   bool
	Records int
	Files   int // Files on disk
	Indexed int // Index lines
}

// StatusResult contains the registry state after drift detection
type StatusResult struct {
	Categories []CategoryStatus
	Dirty      int
	Message    string
}

// StatusCommand reports which categories need a sync. It runs the cheap
// registry reconciliation only, never a full sync.
type StatusCommand struct {
	registry ports.ManifestRegistry
	prober   ports.DirectoryProber
	index    ports.EntryCounter
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(registry ports.ManifestRegistry, prober ports.DirectoryProber, index ports.EntryCounter) *StatusCommand {
	return &StatusCommand{registry: registry, prober: prober, index: index}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	if err := c.registry.Reconcile(); err != nil {
		return nil, fmt.Errorf("failed to reconcile registry: %w", err)
	}

	flags := c.registry.Snapshot()
	result := &StatusResult{}
	for _, category := range c.prober.ListCategories() {
		dirty, known := flags[category]
		status := CategoryStatus{Name: category, Dirty: dirty || !known}
		for _, record := range c.prober.ListRecords(category) {
			status.Records++
			status.Files += len(c.prober.ListFiles(category, record))
			status.Indexed += c.index.CountEntries(category, record)
		}
		if status.Dirty {
			result.Dirty++
		}
		result.Categories = append(result.Categories, status)
	}

	result.Message = fmt.Sprintf("%d categories, %d need sync", len(result.Categories), result.Dirty)
	return result, nil
}
