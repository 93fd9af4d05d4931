package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"sort"
	"strings"

	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// Manifest implements ports.ManifestRegistry over manifest.txt.
// Flags are cached after Load; a category missing from the cache is treated as dirty.
type Manifest struct {
	path    string
	prober  ports.DirectoryProber
	counter ports.EntryCounter
	logger  *slog.Logger

	flags   map[string]bool // nil until Load
	flushes int
}

// NewManifest creates an unloaded registry stored at path
func NewManifest(path string, prober ports.DirectoryProber, counter ports.EntryCounter, logger *slog.Logger) *Manifest {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manifest{
		path:    path,
		prober:  prober,
		counter: counter,
		logger:  logger,
	}
}

// Load reads the registry file into the cache. A missing or unreadable file
// yields an empty registry.
func (m *Manifest) Load() {
	data, err := os.ReadFile(m.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		m.logger.Warn("failed to read manifest", "path", m.path, "error", err)
	}
	m.flags = decodeManifest(data)
}

// Invalidate drops the cache; the next use requires Load
func (m *Manifest) Invalidate() {
	m.flags = nil
}

// MarkChanged flags a category for a full sync
func (m *Manifest) MarkChanged(category string) error {
	return m.set(category, true)
}

// MarkScanned clears a category's flag after a full sync
func (m *Manifest) MarkScanned(category string) error {
	return m.set(category, false)
}

func (m *Manifest) set(category string, dirty bool) error {
	if m.flags == nil {
		return domain.ErrRegistryNotLoaded
	}
	if strings.TrimSpace(category) == "" {
		return nil
	}
	if current, ok := m.flags[category]; ok && current == dirty {
		return nil
	}
	m.flags[category] = dirty
	return m.persist()
}

// Reconcile adds unseen categories as dirty, forgets deleted ones and flags
// clean categories whose file count differs from their index line count.
func (m *Manifest) Reconcile() error {
	if m.flags == nil {
		return domain.ErrRegistryNotLoaded
	}

	live := m.prober.ListCategories()
	onDisk := make(map[string]bool, len(live))
	changed := false

	for _, category := range live {
		onDisk[category] = true
		if _, ok := m.flags[category]; !ok {
			m.flags[category] = true
			changed = true
		}
	}

	for category, dirty := range m.flags {
		switch {
		case !onDisk[category]:
			delete(m.flags, category)
			changed = true
		case !dirty && m.drifted(category):
			m.logger.Info("detected drift", "category", category)
			m.flags[category] = true
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return m.persist()
}

func (m *Manifest) drifted(category string) bool {
	files, lines := 0, 0
	for _, record := range m.prober.ListRecords(category) {
		files += len(m.prober.ListFiles(category, record))
		lines += m.counter.CountEntries(category, record)
	}
	return files != lines
}

// FoldersNeedingSync reconciles and returns the dirty categories, sorted
func (m *Manifest) FoldersNeedingSync() ([]string, error) {
	if err := m.Reconcile(); err != nil {
		return nil, err
	}

	var dirty []string
	for category, flag := range m.flags {
		if flag {
			dirty = append(dirty, category)
		}
	}
	sort.Strings(dirty)
	return dirty, nil
}

// RenameCategory carries the flag over to the new name and always persists
func (m *Manifest) RenameCategory(oldName, newName string) error {
	if m.flags == nil {
		return domain.ErrRegistryNotLoaded
	}
	if strings.TrimSpace(newName) == "" {
		return fmt.Errorf("%w: new category name is empty", domain.ErrInvalidName)
	}
	flag := m.flags[oldName]
	delete(m.flags, oldName)
	m.flags[newName] = flag
	return m.persist()
}

// RemoveCategory forgets a category, persisting only if it was known
func (m *Manifest) RemoveCategory(category string) error {
	if m.flags == nil {
		return domain.ErrRegistryNotLoaded
	}
	if _, ok := m.flags[category]; !ok {
		return nil
	}
	delete(m.flags, category)
	return m.persist()
}

// Snapshot returns a copy of the cached flags, or nil when not loaded
func (m *Manifest) Snapshot() map[string]bool {
	return maps.Clone(m.flags)
}

func (m *Manifest) persist() error {
	if err := writeFileAtomic(m.path, encodeManifest(m.flags)); err != nil {
		return &IndexWriteError{Path: m.path, Op: "write manifest", Err: err}
	}
	m.flushes++
	m.logger.Debug("persisted manifest", "path", m.path, "categories", len(m.flags))
	return nil
}

var _ ports.ManifestRegistry = (*Manifest)(nil)
