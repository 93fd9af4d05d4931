package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfadsms/internal/domain"
)

func TestSyncCommand_Execute(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	writeFile(t, env.path("Grade7", "Juan", "a.pdf"), "a")

	result, err := NewSyncCommand(env.reconciler, env.auditor, false).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grade7"}, result.Stats.Categories)
	assert.Equal(t, 1, result.Stats.EntriesAdopted)
	assert.Contains(t, result.Message, "Synced 1 categories")

	again, err := NewSyncCommand(env.reconciler, env.auditor, false).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Everything is up to date", again.Message)

	forced, err := NewSyncCommand(env.reconciler, env.auditor, true).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Grade7"}, forced.Stats.Categories)
	assert.Zero(t, forced.Stats.RecordsRewritten)

	assert.Equal(t, []domain.AuditAction{domain.ActionSync, domain.ActionSync}, env.audit.actions())
	assert.Contains(t, env.audit.events[0].Detail, "adopted=1")
}
