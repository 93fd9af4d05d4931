package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuditEvent_String(t *testing.T) {
	e := AuditEvent{
		At:       time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
		Action:   ActionUpload,
		User:     "admin",
		Category: "Grade7",
		Record:   "JuanDelaCruz",
		File:     "report.pdf",
	}

	assert.Equal(t,
		"[2025-06-01 08:00:00] [UPLOAD] user=admin | category=Grade7 | record=JuanDelaCruz | file=report.pdf",
		e.String())
}

func TestAuditEvent_StringOmitsEmptyFields(t *testing.T) {
	e := AuditEvent{
		At:     time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
		Action: ActionRenameCategory,
		User:   "admin",
		Detail: "old=Grade7 | new=Grade8",
	}

	assert.Equal(t, "[2025-06-01 08:00:00] [RENAME-CATEGORY] user=admin | old=Grade7 | new=Grade8", e.String())
}
