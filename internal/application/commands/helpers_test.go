package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sfadsms/internal/adapters/filesystem"
	"sfadsms/internal/application"
	"sfadsms/internal/domain"
)

type memoryAuditLog struct {
	events []domain.AuditEvent
}

func (m *memoryAuditLog) Record(_ context.Context, event domain.AuditEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *memoryAuditLog) Recent(_ context.Context, limit int) ([]domain.AuditEvent, error) {
	if limit > 0 && limit < len(m.events) {
		return m.events[len(m.events)-limit:], nil
	}
	return m.events, nil
}

func (m *memoryAuditLog) ForCategory(_ context.Context, category string, _ int) ([]domain.AuditEvent, error) {
	var out []domain.AuditEvent
	for _, e := range m.events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryAuditLog) Close() error { return nil }

func (m *memoryAuditLog) actions() []domain.AuditAction {
	var out []domain.AuditAction
	for _, e := range m.events {
		out = append(out, e.Action)
	}
	return out
}

type testEnv struct {
	dataDir    string
	prober     *filesystem.Prober
	index      *filesystem.MetaIndex
	manifest   *filesystem.Manifest
	store      *filesystem.Repository
	reconciler *application.Reconciler
	audit      *memoryAuditLog
	auditor    *application.Auditor
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
	audit := &memoryAuditLog{}

	return &testEnv{
		dataDir:    dataDir,
		prober:     prober,
		index:      index,
		manifest:   manifest,
		store:      filesystem.NewRepository(dataDir, prober, index, manifest, logger),
		reconciler: application.NewReconciler(manifest, prober, index, logger),
		audit:      audit,
		auditor:    application.NewAuditor(audit, "registrar", logger),
	}
}

func (e *testEnv) path(elem ...string) string {
	return filepath.Join(append([]string{e.dataDir}, elem...)...)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
