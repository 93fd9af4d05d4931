package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// UploadResult contains the result of an upload
type UploadResult struct {
	File    *domain.File
	Message string
}

// UploadCommand copies a file from outside the store into a record
type UploadCommand struct {
	store       ports.FilingStore
	auditor     *application.Auditor
	Source      string
	Category    string
	Record      string
	DisplayName string // Optional; the source extension is kept
	KeepSource  bool
}

// NewUploadCommand creates a new UploadCommand
func NewUploadCommand(store ports.FilingStore, auditor *application.Auditor, source, category, record, displayName string, keepSource bool) *UploadCommand {
	return &UploadCommand{
		store:       store,
		auditor:     auditor,
		Source:      source,
		Category:    category,
		Record:      record,
		DisplayName: displayName,
		KeepSource:  keepSource,
	}
}

// Validate checks if the upload is valid
func (c *UploadCommand) Validate() error {
	if err := application.ValidateRequired("source", c.Source); err != nil {
		return err
	}
	if err := application.ValidateName("category", c.Category); err != nil {
		return err
	}
	if err := application.ValidateName("record", c.Record); err != nil {
		return err
	}
	if c.DisplayName != "" {
		return application.ValidateName("file", c.DisplayName)
	}
	return nil
}

// Execute runs the upload command
func (c *UploadCommand) Execute(ctx context.Context) (*UploadResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	file, err := c.store.Upload(c.Source, c.Category, c.Record, c.DisplayName, c.KeepSource)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", c.Source, err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionUpload,
		Category: file.Category,
		Record:   file.Record,
		File:     file.Name,
		Detail:   "source=" + c.Source,
	})

	return &UploadResult{
		File:    file,
		Message: fmt.Sprintf("Uploaded %s to %s/%s", file.Name, file.Category, file.Record),
	}, nil
}
