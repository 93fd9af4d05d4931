package ports

// ManifestRegistry tracks which categories need a full metadata sync.
// Load must be called before any other operation.
type ManifestRegistry interface {
	// Lifecycle
	Load()
	Invalidate()

	// Flag updates, persisted only on actual change
	MarkChanged(category string) error
	MarkScanned(category string) error

	// Reconcile aligns the registry with disk and flags categories whose
	// file count no longer matches their index line count
	Reconcile() error

	// FoldersNeedingSync reconciles with disk and returns the dirty categories
	FoldersNeedingSync() ([]string, error)

	// Bookkeeping for category rename and delete
	RenameCategory(oldName, newName string) error
	RemoveCategory(category string) error

	// Snapshot returns a copy of the cached flags without touching disk
	Snapshot() map[string]bool
}
