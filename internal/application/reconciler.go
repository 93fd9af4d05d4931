package application

import (
	"fmt"
	"log/slog"
	"time"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// Reconciler drives full metadata syncs for the categories the registry
// reports as dirty. It is the only place a full scan runs.
type Reconciler struct {
	registry ports.ManifestRegistry
	prober   ports.DirectoryProber
	index    ports.MetadataIndex
	logger   *slog.Logger
}

// NewReconciler creates a reconciler owning a loaded registry
func NewReconciler(registry ports.ManifestRegistry, prober ports.DirectoryProber, index ports.MetadataIndex, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{
		registry: registry,
		prober:   prober,
		index:    index,
		logger:   logger,
	}
}

// Registry returns the registry the reconciler works on
func (r *Reconciler) Registry() ports.ManifestRegistry {
	return r.registry
}

// EnsureConsistent full-syncs every record of every dirty category and marks
// each category scanned once all of its records succeeded. On error the
// failing category stays dirty and the statistics so far are returned.
func (r *Reconciler) EnsureConsistent() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	dirty, err := r.registry.FoldersNeedingSync()
	if err != nil {
		return stats, fmt.Errorf("failed to find categories needing sync: %w", err)
	}

	for _, category := range dirty {
		if err := r.syncCategory(category, stats); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		stats.Categories = append(stats.Categories, category)
	}

	stats.Duration = time.Since(start)
	if len(dirty) > 0 {
		r.logger.Info("reconciled metadata",
			"categories", len(stats.Categories),
			"records", stats.RecordsScanned,
			"rewritten", stats.RecordsRewritten,
			"pruned", stats.EntriesPruned,
			"adopted", stats.EntriesAdopted,
			"duration", stats.Duration,
		)
	}
	return stats, nil
}

// ForceFullSync flags every category on disk and runs EnsureConsistent
func (r *Reconciler) ForceFullSync() (*domain.SyncStats, error) {
	for _, category := range r.prober.ListCategories() {
		if err := r.registry.MarkChanged(category); err != nil {
			return &domain.SyncStats{}, err
		}
	}
	return r.EnsureConsistent()
}

func (r *Reconciler) syncCategory(category string, stats *domain.SyncStats) error {
	for _, record := range r.prober.ListRecords(category) {
		result, err := r.index.FullSync(category, record)
		if err != nil {
			return fmt.Errorf("failed to sync %s/%s: %w", category, record, err)
		}
		stats.Add(result)
	}
	return r.registry.MarkScanned(category)
}
