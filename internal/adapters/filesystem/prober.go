package filesystem

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"sfadsms/internal/domain"
)

// Prober implements ports.DirectoryProber by reading the data directory on every call
type Prober struct {
	dataDir string
	logger  *slog.Logger
}

// NewProber creates a prober rooted at the store's data directory
func NewProber(dataDir string, logger *slog.Logger) *Prober {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prober{dataDir: dataDir, logger: logger}
}

// ListCategories returns the directories directly under the data directory,
// skipping hidden ones
func (p *Prober) ListCategories() []string {
	return p.list(p.dataDir, isVisibleDir)
}

// ListRecords returns the directories directly under a category, skipping hidden ones
func (p *Prober) ListRecords(category string) []string {
	return p.list(filepath.Join(p.dataDir, category), isVisibleDir)
}

// ListFiles returns the regular files of a record, without its index file.
// Symlinks count when they resolve to a regular file.
func (p *Prober) ListFiles(category, record string) []string {
	return p.list(filepath.Join(p.dataDir, category, record), func(dir string, e fs.DirEntry) bool {
		return isRegularFile(dir, e) && !domain.IsMetadataArtifact(record, e.Name())
	})
}

func (p *Prober) list(dir string, keep func(dir string, e fs.DirEntry) bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("failed to list directory", "path", dir, "error", err)
		}
		return []string{}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if keep(dir, entry) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

func isVisibleDir(_ string, e fs.DirEntry) bool {
	return e.IsDir() && !domain.IsHidden(e.Name())
}

func isRegularFile(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}
