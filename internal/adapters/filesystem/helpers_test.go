package filesystem

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)

const fixedStamp = "07-03-2025 02:05 PM"

type testStore struct {
	root     string
	dataDir  string
	prober   *Prober
	index    *MetaIndex
	manifest *Manifest
	repo     *Repository
}

func setupTestStore(t *testing.T) *testStore {
	t.Helper()

	root := t.TempDir()
	dataDir := filepath.Join(root, ".data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prober := NewProber(dataDir, logger)
	index := NewMetaIndex(dataDir, prober, logger)
	index.now = func() time.Time { return fixedTime }
	manifest := NewManifest(filepath.Join(root, "manifest.txt"), prober, index, logger)
	manifest.Load()

	return &testStore{
		root:     root,
		dataDir:  dataDir,
		prober:   prober,
		index:    index,
		manifest: manifest,
		repo:     NewRepository(dataDir, prober, index, manifest, logger),
	}
}

// path joins elements under the data directory
func (s *testStore) path(elem ...string) string {
	return filepath.Join(append([]string{s.dataDir}, elem...)...)
}

func (s *testStore) manifestPath() string {
	return filepath.Join(s.root, "manifest.txt")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// makeUnreadable drops all permissions on path until the test ends.
// Root and Windows ignore the mode, so those runs are skipped.
func makeUnreadable(t *testing.T, path string) {
	t.Helper()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}
	require.NoError(t, os.Chmod(path, 0))
	t.Cleanup(func() { os.Chmod(path, 0644) })
}
