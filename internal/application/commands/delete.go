package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// DeleteResult contains the result of a delete
type DeleteResult struct {
	Target  string
	Message string
}

// DeleteFileCommand deletes a file from a record
type DeleteFileCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	Record   string
	File     string
}

// NewDeleteFileCommand creates a new DeleteFileCommand
func NewDeleteFileCommand(store ports.FilingStore, auditor *application.Auditor, category, record, file string) *DeleteFileCommand {
	return &DeleteFileCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		Record:   record,
		File:     file,
	}
}

// Validate checks if the delete is valid
func (c *DeleteFileCommand) Validate() error {
	return validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
		nameCheck{"file", c.File},
	)
}

// Execute runs the delete file command
func (c *DeleteFileCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteFile(c.Category, c.Record, c.File); err != nil {
		return nil, fmt.Errorf("failed to delete file: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionDeleteFile,
		Category: c.Category,
		Record:   c.Record,
		File:     c.File,
	})

	target := c.Category + "/" + c.Record + "/" + c.File
	return &DeleteResult{Target: target, Message: "Deleted " + target}, nil
}

// DeleteRecordCommand deletes a record and its files
type DeleteRecordCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	Record   string
}

// NewDeleteRecordCommand creates a new DeleteRecordCommand
func NewDeleteRecordCommand(store ports.FilingStore, auditor *application.Auditor, category, record string) *DeleteRecordCommand {
	return &DeleteRecordCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		Record:   record,
	}
}

// Validate checks if the delete is valid
func (c *DeleteRecordCommand) Validate() error {
	return validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
	)
}

// Execute runs the delete record command
func (c *DeleteRecordCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteRecord(c.Category, c.Record); err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionDeleteRecord,
		Category: c.Category,
		Record:   c.Record,
	})

	target := c.Category + "/" + c.Record
	return &DeleteResult{Target: target, Message: "Deleted record " + target}, nil
}

// DeleteCategoryCommand deletes a category and everything in it
type DeleteCategoryCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
}

// NewDeleteCategoryCommand creates a new DeleteCategoryCommand
func NewDeleteCategoryCommand(store ports.FilingStore, auditor *application.Auditor, category string) *DeleteCategoryCommand {
	return &DeleteCategoryCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
	}
}

// Validate checks if the delete is valid
func (c *DeleteCategoryCommand) Validate() error {
	return application.ValidateName("category", c.Category)
}

// Execute runs the delete category command
func (c *DeleteCategoryCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.DeleteCategory(c.Category); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionDeleteCategory,
		Category: c.Category,
	})

	return &DeleteResult{Target: c.Category, Message: "Deleted category " + c.Category}, nil
}
