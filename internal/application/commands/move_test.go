package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
)

func TestMoveFileCommand_Validate(t *testing.T) {
	tests := []struct {
		name        string
		dstCategory string
		dstRecord   string
		wantErr     bool
		errMsg      string
	}{
		{name: "valid move to other record", dstCategory: "Grade7", dstRecord: "Ana"},
		{name: "valid move to other category", dstCategory: "Grade8", dstRecord: "Juan"},
		{name: "empty destination category", dstCategory: "", dstRecord: "Juan", wantErr: true, errMsg: "destination category is required"},
		{name: "empty destination record", dstCategory: "Grade8", dstRecord: "", wantErr: true, errMsg: "destination record is required"},
		{name: "same record", dstCategory: "Grade7", dstRecord: "Juan", wantErr: true, errMsg: "already in that record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MoveFileCommand{
				Category:    "Grade7",
				Record:      "Juan",
				File:        "a.pdf",
				DstCategory: tt.dstCategory,
				DstRecord:   tt.dstRecord,
			}
			err := cmd.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMoveRecordCommand_SameCategory(t *testing.T) {
	cmd := &MoveRecordCommand{Category: "Grade7", Record: "Juan", DstCategory: "Grade7"}

	var moveErr *application.MoveError
	require.True(t, errors.As(cmd.Validate(), &moveErr))
	assert.Equal(t, "Grade7/Juan", moveErr.Source)
}

func TestMoveCommands_Execute(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	writeFile(t, env.path("Grade7", "Juan", "a.pdf"), "a")
	require.NoError(t, env.index.Append("Grade7", "Juan", "a.pdf"))

	fileResult, err := NewMoveFileCommand(env.store, env.auditor, "Grade7", "Juan", "a.pdf", "Grade7", "Ana").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Moved a.pdf to Grade7/Ana", fileResult.Message)

	recResult, err := NewMoveRecordCommand(env.store, env.auditor, "Grade7", "Ana", "Grade8").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grade8", recResult.Record.Category)

	assert.FileExists(t, env.path("Grade8", "Ana", "a.pdf"))
	assert.Len(t, env.index.Entries("Grade8", "Ana"), 1)
	assert.Empty(t, env.index.Entries("Grade7", "Juan"))
	assert.Equal(t, []domain.AuditAction{domain.ActionMoveFile, domain.ActionMoveRecord}, env.audit.actions())

	_, err = NewMoveRecordCommand(env.store, env.auditor, "Grade7", "Ghost", "Grade8").Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
