package commands

import (
	"context"
	"fmt"

	"sfadsms/internal/application"
	"sfadsms/internal/domain"
	"sfadsms/internal/ports"
)

// Listings reconcile first so they reflect edits made outside the store

func ensureConsistent(reconciler *application.Reconciler) error {
	if _, err := reconciler.EnsureConsistent(); err != nil {
		return fmt.Errorf("failed to reconcile metadata: %w", err)
	}
	return nil
}

// ListCategoriesCommand lists all categories in the store
type ListCategoriesCommand struct {
	reconciler *application.Reconciler
	store      ports.FilingStore
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(reconciler *application.Reconciler, store ports.FilingStore) *ListCategoriesCommand {
	return &ListCategoriesCommand{reconciler: reconciler, store: store}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.Category, error) {
	if err := ensureConsistent(c.reconciler); err != nil {
		return nil, err
	}
	return c.store.ListCategories()
}

// ListRecordsCommand lists all records in a category
type ListRecordsCommand struct {
	reconciler *application.Reconciler
	store      ports.FilingStore
	Category   string
}

// NewListRecordsCommand creates a new ListRecordsCommand
func NewListRecordsCommand(reconciler *application.Reconciler, store ports.FilingStore, category string) *ListRecordsCommand {
	return &ListRecordsCommand{
		reconciler: reconciler,
		store:      store,
		Category:   category,
	}
}

// Validate checks the category name
func (c *ListRecordsCommand) Validate() error {
	return application.ValidateName("category", c.Category)
}

// Execute runs the list records command
func (c *ListRecordsCommand) Execute(ctx context.Context) ([]domain.Record, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ensureConsistent(c.reconciler); err != nil {
		return nil, err
	}
	return c.store.ListRecords(c.Category)
}

// ListFilesCommand lists the files of a record in index order
type ListFilesCommand struct {
	reconciler *application.Reconciler
	store      ports.FilingStore
	Category   string
	Record     string
}

// NewListFilesCommand creates a new ListFilesCommand
func NewListFilesCommand(reconciler *application.Reconciler, store ports.FilingStore, category, record string) *ListFilesCommand {
	return &ListFilesCommand{
		reconciler: reconciler,
		store:      store,
		Category:   category,
		Record:     record,
	}
}

// Validate checks the category and record names
func (c *ListFilesCommand) Validate() error {
	return validateAll(
		nameCheck{"category", c.Category},
		nameCheck{"record", c.Record},
	)
}

// Execute runs the list files command
func (c *ListFilesCommand) Execute(ctx context.Context) ([]domain.File, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ensureConsistent(c.reconciler); err != nil {
		return nil, err
	}
	return c.store.ListFiles(c.Category, c.Record)
}
