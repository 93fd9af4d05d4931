package mcp

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfadsms/internal/adapters/filesystem"
	"sfadsms/internal/application"
)

type testEnv struct {
	root    string
	dataDir string
	deps    *Deps
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	dataDir := filepath.Join(root, ".data")
	require.NoError(t, os.MkdirAll(dataDir, 0755))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	prober := filesystem.NewProber(dataDir, logger)
	index := filesystem.NewMetaIndex(dataDir, prober, logger)
	manifest := filesystem.NewManifest(filepath.Join(root, "manifest.txt"), prober, index, logger)
	manifest.Load()

	return &testEnv{
		root:    root,
		dataDir: dataDir,
		deps: &Deps{
			Store:      filesystem.NewRepository(dataDir, prober, index, manifest, logger),
			Reconciler: application.NewReconciler(manifest, prober, index, logger),
			Prober:     prober,
			Index:      index,
			Auditor:    application.NewAuditor(nil, "tester", logger),
		},
	}
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, result.IsError
}

func TestCreateUploadAndList(t *testing.T) {
	env := setupTestEnv(t)

	_, isErr := call(t, createHandler(env.deps), map[string]any{"category": "Grade7"})
	require.False(t, isErr)
	_, isErr = call(t, createHandler(env.deps), map[string]any{"category": "Grade7", "record": "Juan"})
	require.False(t, isErr)

	src := filepath.Join(env.root, "card.pdf")
	require.NoError(t, os.WriteFile(src, []byte("report"), 0644))

	text, isErr := call(t, uploadHandler(env.deps), map[string]any{
		"source":   src,
		"category": "Grade7",
		"record":   "Juan",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "card.pdf")
	assert.NoFileExists(t, src)

	text, isErr = call(t, listHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Contains(t, text, "Grade7")

	text, isErr = call(t, listHandler(env.deps), map[string]any{"category": "Grade7", "record": "Juan"})
	require.False(t, isErr)
	assert.Contains(t, text, "0  card.pdf")
}

func TestListRecordWithoutCategory(t *testing.T) {
	env := setupTestEnv(t)

	text, isErr := call(t, listHandler(env.deps), map[string]any{"record": "Juan"})
	assert.True(t, isErr)
	assert.Contains(t, text, "requires category")
}

func TestListEmpty(t *testing.T) {
	env := setupTestEnv(t)

	text, isErr := call(t, listHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Equal(t, "No results.", text)
}

func TestRenameAndDeleteDispatch(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dataDir, "Grade7", "Juan"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, "Grade7", "Juan", "a.pdf"), []byte("a"), 0644))

	text, isErr := call(t, renameHandler(env.deps), map[string]any{
		"category": "Grade7",
		"record":   "Juan",
		"file":     "a.pdf",
		"new_name": "report",
	})
	require.False(t, isErr, text)
	assert.FileExists(t, filepath.Join(env.dataDir, "Grade7", "Juan", "report.pdf"))

	text, isErr = call(t, renameHandler(env.deps), map[string]any{
		"category": "Grade7",
		"file":     "report.pdf",
		"new_name": "x",
	})
	assert.True(t, isErr)
	assert.Contains(t, text, "file requires record")

	_, isErr = call(t, deleteHandler(env.deps), map[string]any{"category": "Grade7", "record": "Juan"})
	require.False(t, isErr)
	assert.NoDirExists(t, filepath.Join(env.dataDir, "Grade7", "Juan"))
	assert.DirExists(t, filepath.Join(env.dataDir, "Grade7"))
}

func TestMoveRecord(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dataDir, "Grade7", "Juan"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(env.dataDir, "Grade8"), 0755))

	text, isErr := call(t, moveHandler(env.deps), map[string]any{
		"category":             "Grade7",
		"record":               "Juan",
		"destination_category": "Grade8",
	})
	require.False(t, isErr, text)
	assert.DirExists(t, filepath.Join(env.dataDir, "Grade8", "Juan"))
}

func TestStatusAndSync(t *testing.T) {
	env := setupTestEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.dataDir, "Grade7", "Juan"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(env.dataDir, "Grade7", "Juan", "a.pdf"), []byte("a"), 0644))

	text, isErr := call(t, statusHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Contains(t, text, "dirty  Grade7")

	text, isErr = call(t, syncHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Contains(t, text, "Synced 1 categories")

	text, isErr = call(t, syncHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Equal(t, "Everything is up to date", text)

	text, isErr = call(t, statusHandler(env.deps), map[string]any{})
	require.False(t, isErr)
	assert.Contains(t, text, "clean  Grade7")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupTestEnv(t)

	text, isErr := call(t, historyHandler(env.deps), map[string]any{})
	assert.True(t, isErr)
	assert.Contains(t, text, "disabled")
}
