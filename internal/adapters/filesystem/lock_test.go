package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLock_SecondHolderIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store", ".lock")

	first := NewStoreLock(path)
	require.NoError(t, first.Acquire())
	defer first.Release()

	assert.FileExists(t, path)

	second := NewStoreLock(path)
	err := second.Acquire()
	assert.ErrorIs(t, err, ErrStoreLocked)

	require.NoError(t, first.Release())
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())
}

func TestStoreLock_ReleaseWithoutAcquire(t *testing.T) {
	lock := NewStoreLock(filepath.Join(t.TempDir(), ".lock"))

	assert.NoError(t, lock.Release())
	assert.NoError(t, lock.Release())
}

func TestStoreLock_AcquireTwiceIsNoop(t *testing.T) {
	lock := NewStoreLock(filepath.Join(t.TempDir(), ".lock"))

	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())
}
