package ports

import "sfadsms/internal/domain"

// FilingStore defines the interface for the collaborator-facing store operations
type FilingStore interface {
	// List operations
	ListCategories() ([]domain.Category, error)
	ListRecords(category string) ([]domain.Record, error)
	ListFiles(category, record string) ([]domain.File, error)

	// Create operations
	CreateCategory(name string) (*domain.Category, error)
	CreateRecord(category, record string) (*domain.Record, error)

	// File operations
	Upload(src, category, record, displayName string, keepSource bool) (*domain.File, error)
	RenameFile(category, record, oldName, newBase string) (*domain.File, error)
	MoveFile(category, record, fileName, dstCategory, dstRecord string) (*domain.File, error)
	DeleteFile(category, record, fileName string) error

	// Record operations
	RenameRecord(category, oldName, newName string) (*domain.Record, error)
	MoveRecord(category, record, dstCategory string) (*domain.Record, error)
	DeleteRecord(category, record string) error

	// Category operations
	RenameCategory(oldName, newName string) (*domain.Category, error)
	DeleteCategory(name string) error
}
