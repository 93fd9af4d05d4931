package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// MoveFileResult contains the result of moving a file
type MoveFileResult struct {
	File    *domain.File
	Message string
}

// MoveFileCommand moves a file into another record
type MoveFileCommand struct {
	store       ports.FilingStore
	auditor     *application.Auditor
	Category    string
	Record      string
	File        string
	DstCategory string
	DstRecord   string
}

// NewMoveFileCommand creates a new MoveFileCommand
func NewMoveFileCommand(store ports.FilingStore, auditor *application.Auditor, category, record, file, dstCategory, dstRecord string) *MoveFileCommand {
	return &MoveFileCommand{
		store:       store,
		auditor:     auditor,
		Category:    category,
		Record:      record,
		File:        file,
		DstCategory: dstCategory,
		DstRecord:   dstRecord,
	}
}

// Validate checks if the move is valid
func (c *MoveFileCommand) Validate() error {
	if err := validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
		nameCheck{"file", c.File},
		nameCheck{"dstCategory", c.DstCategory},
		nameCheck{"dstRecord", c.DstRecord},
	); err != nil {
		return err
	}

	if c.Category == c.DstCategory && c.Record == c.DstRecord {
		return &application.MoveError{
			Source: c.Category + "/" + c.Record + "/" + c.File,
			Dest:   c.DstCategory + "/" + c.DstRecord,
			Reason: "file is already in that record",
		}
	}
	return nil
}

// Execute runs the move file command
func (c *MoveFileCommand) Execute(ctx context.Context) (*MoveFileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	file, err := c.store.MoveFile(c.Category, c.Record, c.File, c.DstCategory, c.DstRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to move file: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionMoveFile,
		Category: c.Category,
		Record:   c.Record,
		File:     c.File,
		Detail:   "to=" + c.DstCategory + "/" + c.DstRecord,
	})

	return &MoveFileResult{
		File:    file,
		Message: fmt.Sprintf("Moved %s to %s/%s", file.Name, file.Category, file.Record),
	}, nil
}

// MoveRecordResult contains the result of moving a record
type MoveRecordResult struct {
	Record  *domain.Record
	Message string
}

// MoveRecordCommand moves a record into another category
type MoveRecordCommand struct {
	store       ports.FilingStore
	auditor     *application.Auditor
	Category    string
	Record      string
	DstCategory string
}

// NewMoveRecordCommand creates a new MoveRecordCommand
func NewMoveRecordCommand(store ports.FilingStore, auditor *application.Auditor, category, record, dstCategory string) *MoveRecordCommand {
	return &MoveRecordCommand{
		store:       store,
		auditor:     auditor,
		Category:    category,
		Record:      record,
		DstCategory: dstCategory,
	}
}

// Validate checks if the move is valid
func (c *MoveRecordCommand) Validate() error {
	if err := validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
		nameCheck{"dstCategory", c.DstCategory},
	); err != nil {
		return err
	}

	if c.Category == c.DstCategory {
		return &application.MoveError{
			Source: c.Category + "/" + c.Record,
			Dest:   c.DstCategory,
			Reason: "record is already in that category",
		}
	}
	return nil
}

// Execute runs the move record command
func (c *MoveRecordCommand) Execute(ctx context.Context) (*MoveRecordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.MoveRecord(c.Category, c.Record, c.DstCategory)
	if err != nil {
		return nil, fmt.Errorf("failed to move record: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionMoveRecord,
		Category: c.Category,
		Record:   c.Record,
		Detail:   "to=" + c.DstCategory,
	})

	return &MoveRecordResult{
		Record:  rec,
		Message: fmt.Sprintf("Moved record %s to %s", rec.Name, rec.Category),
	}, nil
}
