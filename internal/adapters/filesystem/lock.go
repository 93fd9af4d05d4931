package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrStoreLocked is returned when another process holds the store lock
var ErrStoreLocked = errors.New("store is in use by another process")

// StoreLock keeps a single process working on a store at a time
type StoreLock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewStoreLock creates a lock backed by the file at path
func NewStoreLock(path string) *StoreLock {
	return &StoreLock{
		path:  path,
		flock: flock.New(path),
	}
}

// Acquire takes the lock without blocking, failing with ErrStoreLocked when it is held
func (l *StoreLock) Acquire() error {
	if l.locked {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return fmt.Errorf("%w (lock file %s)", ErrStoreLocked, l.path)
	}

	l.locked = true
	return nil
}

// Release frees the lock. Safe to call when not held.
func (l *StoreLock) Release() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// Path returns the lock file path
func (l *StoreLock) Path() string {
	return l.path
}
