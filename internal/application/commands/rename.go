package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// RenameResult contains the result of a rename
type RenameResult struct {
	OldName string
	NewName string
	Message string
}

// RenameFileCommand renames a file inside its record, keeping its extension
type RenameFileCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	Record   string
	File     string
	NewName  string
}

// NewRenameFileCommand creates a new RenameFileCommand
func NewRenameFileCommand(store ports.FilingStore, auditor *application.Auditor, category, record, file, newName string) *RenameFileCommand {
	return &RenameFileCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		Record:   record,
		File:     file,
		NewName:  newName,
	}
}

// Validate checks if the rename is valid
func (c *RenameFileCommand) Validate() error {
	return validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
		nameCheck{"file", c.File},
		nameCheck{"newName", c.NewName},
	)
}

// Execute runs the rename file command
func (c *RenameFileCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	file, err := c.store.RenameFile(c.Category, c.Record, c.File, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename file: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionRenameFile,
		Category: c.Category,
		Record:   c.Record,
		File:     c.File,
		Detail:   "to=" + file.Name,
	})

	return &RenameResult{
		OldName: c.File,
		NewName: file.Name,
		Message: fmt.Sprintf("Renamed %s to %s", c.File, file.Name),
	}, nil
}

// RenameRecordCommand renames a record within its category
type RenameRecordCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	Record   string
	NewName  string
}

// NewRenameRecordCommand creates a new RenameRecordCommand
func NewRenameRecordCommand(store ports.FilingStore, auditor *application.Auditor, category, record, newName string) *RenameRecordCommand {
	return &RenameRecordCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		Record:   record,
		NewName:  newName,
	}
}

// Validate checks if the rename is valid
func (c *RenameRecordCommand) Validate() error {
	if err := validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
		nameCheck{"newName", c.NewName},
	); err != nil {
		return err
	}
	return requireDifferent("newName", c.Record, c.NewName)
}

// Execute runs the rename record command
func (c *RenameRecordCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.RenameRecord(c.Category, c.Record, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename record: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionRenameRecord,
		Category: c.Category,
		Record:   c.Record,
		Detail:   "to=" + rec.Name,
	})

	return &RenameResult{
		OldName: c.Record,
		NewName: rec.Name,
		Message: fmt.Sprintf("Renamed record %s/%s to %s", c.Category, c.Record, rec.Name),
	}, nil
}

// RenameCategoryCommand renames a category
type RenameCategoryCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	NewName  string
}

// NewRenameCategoryCommand creates a new RenameCategoryCommand
func NewRenameCategoryCommand(store ports.FilingStore, auditor *application.Auditor, category, newName string) *RenameCategoryCommand {
	return &RenameCategoryCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		NewName:  newName,
	}
}

// Validate checks if the rename is valid
func (c *RenameCategoryCommand) Validate() error {
	if err := validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"newName", c.NewName},
	); err != nil {
		return err
	}
	return requireDifferent("newName", c.Category, c.NewName)
}

// Execute runs the rename category command
func (c *RenameCategoryCommand) Execute(ctx context.Context) (*RenameResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.store.RenameCategory(c.Category, c.NewName)
	if err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionRenameCategory,
		Category: c.Category,
		Detail:   "to=" + cat.Name,
	})

	return &RenameResult{
		OldName: c.Category,
		NewName: cat.Name,
		Message: fmt.Sprintf("Renamed category %s to %s", c.Category, cat.Name),
	}, nil
}
