package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"sfadsms/internal/domain"
)

// Watcher reports external edits under the data directory per category
type Watcher struct {
	dataDir  string
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a watcher; call Open before Run
func NewWatcher(dataDir string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{dataDir: dataDir, debounce: debounce, logger: logger}
}

// Open starts watching the data directory and every directory below it
func (w *Watcher) Open() error {
	if err := os.MkdirAll(w.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	w.fsw = fsw

	if err := w.addDirs(w.dataDir); err != nil {
		fsw.Close()
		w.fsw = nil
		return fmt.Errorf("add directories to watcher: %w", err)
	}
	return nil
}

// Run delivers events until ctx is cancelled. onChange receives the category
// of every relevant event; onQuiet runs once the debounce period passes without
// further events. Both callbacks run on the caller's goroutine.
func (w *Watcher) Run(ctx context.Context, onChange func(category string), onQuiet func()) error {
	if w.fsw == nil {
		return fmt.Errorf("watcher not open")
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			category, relevant := w.categoryOf(event)
			if !relevant {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirs(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			w.logger.Debug("external change", "category", category, "path", event.Name, "op", event.Op.String())
			onChange(category)
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)

		case <-timer.C:
			if pending {
				pending = false
				onQuiet()
			}
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	if w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	w.fsw = nil
	return err
}

// categoryOf maps an event to its category, ignoring attribute-only changes,
// hidden folders and writes to record index files.
func (w *Watcher) categoryOf(event fsnotify.Event) (string, bool) {
	if event.Op == fsnotify.Chmod {
		return "", false
	}

	rel, err := filepath.Rel(w.dataDir, event.Name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if domain.IsHidden(parts[0]) || (len(parts) >= 2 && domain.IsHidden(parts[1])) {
		return "", false
	}
	if len(parts) == 3 && domain.IsMetadataArtifact(parts[1], parts[2]) {
		return "", false
	}
	return parts[0], true
}

func (w *Watcher) addDirs(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.fsw.Add(path)
	})
}
