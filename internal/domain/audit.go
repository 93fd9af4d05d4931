package domain

import (
	"fmt"
	"strings"
	"time"
)

// AuditAction names a mutation recorded in the audit trail
type AuditAction string

const (
	ActionUpload         AuditAction = "UPLOAD"
	ActionCreateCategory AuditAction = "CREATE-CATEGORY"
	ActionCreateRecord   AuditAction = "CREATE-RECORD"
	ActionRenameFile     AuditAction = "RENAME-FILE"
	ActionRenameRecord   AuditAction = "RENAME-RECORD"
	ActionRenameCategory AuditAction = "RENAME-CATEGORY"
	ActionMoveFile       AuditAction = "MOVE-FILE"
	ActionMoveRecord     AuditAction = "MOVE-RECORD"
	ActionDeleteFile     AuditAction = "DELETE-FILE"
	ActionDeleteRecord   AuditAction = "DELETE-RECORD"
	ActionDeleteCategory AuditAction = "DELETE-CATEGORY"
	ActionSync           AuditAction = "SYNC"
)

// AuditEvent is one entry of the audit trail
type AuditEvent struct {
	ID       int64
	At       time.Time
	Action   AuditAction
	User     string
	Category string
	Record   string
	File     string
	Detail   string // Free-form, e.g. "to=Grade8/Maria"
}

// String renders the event as a single log line:
// [2006-01-02 15:04:05] [UPLOAD] user=admin | category=Grade7 | record=Juan | file=a.pdf
func (e AuditEvent) String() string {
	parts := []string{"user=" + e.User}
	if e.Category != "" {
		parts = append(parts, "category="+e.Category)
	}
	if e.Record != "" {
		parts = append(parts, "record="+e.Record)
	}
	if e.File != "" {
		parts = append(parts, "file="+e.File)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return fmt.Sprintf("[%s] [%s] %s", e.At.Format("2006-01-02 15:04:05"), e.Action, strings.Join(parts, " | "))
}
