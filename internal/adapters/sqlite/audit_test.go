package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfadsms/internal/domain"
)

func openTestAuditLog(t *testing.T) *AuditLog {
	t.Helper()
	log, err := OpenAuditLog(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })
	return log
}

func TestAuditLog_RecordAndRecent(t *testing.T) {
	log := openTestAuditLog(t)
	ctx := context.Background()
	at := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.UTC)

	require.NoError(t, log.Record(ctx, domain.AuditEvent{
		At: at, Action: domain.ActionCreateRecord, User: "admin", Category: "Grade7", Record: "Juan",
	}))
	require.NoError(t, log.Record(ctx, domain.AuditEvent{
		At: at.Add(time.Minute), Action: domain.ActionUpload, User: "admin",
		Category: "Grade7", Record: "Juan", File: "a.pdf",
	}))

	events, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, domain.ActionUpload, events[0].Action)
	assert.Equal(t, "a.pdf", events[0].File)
	assert.True(t, events[0].At.Equal(at.Add(time.Minute)))
	assert.Equal(t, domain.ActionCreateRecord, events[1].Action)
	assert.Greater(t, events[0].ID, events[1].ID)
}

func TestAuditLog_RecentLimit(t *testing.T) {
	log := openTestAuditLog(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Record(ctx, domain.AuditEvent{Action: domain.ActionSync, User: "admin"}))
	}

	events, err := log.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.False(t, events[0].At.IsZero())
}

func TestAuditLog_ForCategory(t *testing.T) {
	log := openTestAuditLog(t)
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, domain.AuditEvent{Action: domain.ActionCreateCategory, User: "a", Category: "Grade7"}))
	require.NoError(t, log.Record(ctx, domain.AuditEvent{Action: domain.ActionCreateCategory, User: "a", Category: "Grade8"}))

	events, err := log.ForCategory(ctx, "Grade8", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Grade8", events[0].Category)
}

func TestAuditLog_ReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	ctx := context.Background()

	first, err := OpenAuditLog(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, domain.AuditEvent{Action: domain.ActionDeleteFile, User: "admin"}))
	require.NoError(t, first.Close())

	second, err := OpenAuditLog(path)
	require.NoError(t, err)
	defer second.Close()

	events, err := second.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
