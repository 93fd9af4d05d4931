package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// CreateCategoryResult contains the result of creating a category
type CreateCategoryResult struct {
	Category *domain.Category
	Message  string
}

// CreateCategoryCommand creates a top-level category
type CreateCategoryCommand struct {
	store   ports.FilingStore
	auditor *application.Auditor
	Name    string
}

// NewCreateCategoryCommand creates a new CreateCategoryCommand
func NewCreateCategoryCommand(store ports.FilingStore, auditor *application.Auditor, name string) *CreateCategoryCommand {
	return &CreateCategoryCommand{
		store:   store,
		auditor: auditor,
		Name:    name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCategoryCommand) Validate() error {
	return application.ValidateName("category", c.Name)
}

// Execute runs the create category command
func (c *CreateCategoryCommand) Execute(ctx context.Context) (*CreateCategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cat, err := c.store.CreateCategory(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionCreateCategory,
		Category: cat.Name,
	})

	return &CreateCategoryResult{
		Category: cat,
		Message:  fmt.Sprintf("Created category: %s", cat.Name),
	}, nil
}

// CreateRecordResult contains the result of creating a record
type CreateRecordResult struct {
	Record  *domain.Record
	Message string
}

// CreateRecordCommand creates a record in a category
type CreateRecordCommand struct {
	store    ports.FilingStore
	auditor  *application.Auditor
	Category string
	Name     string
}

// NewCreateRecordCommand creates a new CreateRecordCommand
func NewCreateRecordCommand(store ports.FilingStore, auditor *application.Auditor, category, name string) *CreateRecordCommand {
	return &CreateRecordCommand{
		store:    store,
		auditor:  auditor,
		Category: category,
		Name:     name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateRecordCommand) Validate() error {
	if err := application.ValidateName("category", c.Category); err != nil {
		return err
	}
	return application.ValidateName("record", c.Name)
}

// Execute runs the create record command
func (c *CreateRecordCommand) Execute(ctx context.Context) (*CreateRecordResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rec, err := c.store.CreateRecord(c.Category, c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	c.auditor.Record(ctx, domain.AuditEvent{
		Action:   domain.ActionCreateRecord,
		Category: rec.Category,
		Record:   rec.Name,
	})

	return &CreateRecordResult{
		Record:  rec,
		Message: fmt.Sprintf("Created record: %s/%s", rec.Category, rec.Name),
	}, nil
}
