package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"sfadsms/internal/domain"
	"sfadsms/internal/fileutil"
	"sfadsms/internal/ports"
)

// Repository implements ports.FilingStore on top of the data directory.
// Every mutation updates the metadata index through its fast paths and flags
// the touched categories in the registry; full syncs are left to the reconciler.
type Repository struct {
	dataDir  string
	prober   ports.DirectoryProber
	index    ports.MetadataIndex
	registry ports.ManifestRegistry
	logger   *slog.Logger
}

// NewRepository creates a new filesystem repository
func NewRepository(dataDir string, prober ports.DirectoryProber, index ports.MetadataIndex, registry ports.ManifestRegistry, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		dataDir:  dataDir,
		prober:   prober,
		index:    index,
		registry: registry,
		logger:   logger,
	}
}

// ListCategories returns all categories with their registry flag
func (r *Repository) ListCategories() ([]domain.Category, error) {
	flags := r.registry.Snapshot()

	var categories []domain.Category
	for _, name := range r.prober.ListCategories() {
		dirty, known := flags[name]
		categories = append(categories, domain.Category{
			Name:  name,
			Path:  r.categoryPath(name),
			Dirty: dirty || !known,
		})
	}

	domain.SortCategories(categories)
	return categories, nil
}

// ListRecords returns all records within a category
func (r *Repository) ListRecords(category string) ([]domain.Record, error) {
	if err := requireDir(r.categoryPath(category), "category", category); err != nil {
		return nil, err
	}

	var records []domain.Record
	for _, name := range r.prober.ListRecords(category) {
		records = append(records, domain.Record{
			Name:     name,
			Category: category,
			Path:     r.recordPath(category, name),
		})
	}

	domain.SortRecords(records)
	return records, nil
}

// ListFiles returns the files of a record in index order
func (r *Repository) ListFiles(category, record string) ([]domain.File, error) {
	if err := requireDir(r.recordPath(category, record), "record", category+"/"+record); err != nil {
		return nil, err
	}

	var files []domain.File
	for _, e := range r.index.Entries(category, record) {
		files = append(files, r.toFile(category, record, e))
	}
	return files, nil
}

// CreateCategory creates a new empty category
func (r *Repository) CreateCategory(name string) (*domain.Category, error) {
	if err := domain.ValidateFolderName(name); err != nil {
		return nil, err
	}

	path := r.categoryPath(name)
	if err := requireAbsent(path, "category", name); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if err := r.registry.MarkChanged(name); err != nil {
		return nil, err
	}

	return &domain.Category{Name: name, Path: path, Dirty: true}, nil
}

// CreateRecord creates a new record, creating its category if needed
func (r *Repository) CreateRecord(category, record string) (*domain.Record, error) {
	if err := validateNames(category, record); err != nil {
		return nil, err
	}

	path := r.recordPath(category, record)
	if err := requireAbsent(path, "record", category+"/"+record); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	if err := r.registry.MarkChanged(category); err != nil {
		return nil, err
	}

	return &domain.Record{Name: record, Category: category, Path: path}, nil
}

// Upload copies src into a record under displayName plus the source extension,
// or under the source's own name when displayName is empty.
func (r *Repository) Upload(src, category, record, displayName string, keepSource bool) (*domain.File, error) {
	if err := validateNames(category, record); err != nil {
		return nil, err
	}

	name := filepath.Base(src)
	if displayName != "" {
		_, ext := domain.SplitExt(name)
		name = domain.WithExt(displayName, ext)
	}
	if err := r.validateFileName(record, name); err != nil {
		return nil, err
	}

	if err := requireFile(src, "source file", src); err != nil {
		return nil, err
	}

	dst := r.filePath(category, record, name)
	if err := requireAbsent(dst, "file", name); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		return nil, fmt.Errorf("failed to copy file: %w", err)
	}
	if !keepSource {
		if err := os.Remove(src); err != nil {
			r.logger.Warn("failed to remove uploaded source", "path", src, "error", err)
		}
	}

	if err := r.afterChange(r.index.Append(category, record, name), category); err != nil {
		return nil, err
	}
	return r.lookupFile(category, record, name), nil
}

// RenameFile renames a file, keeping its original extension
func (r *Repository) RenameFile(category, record, oldName, newBase string) (*domain.File, error) {
	if err := validateNames(category, record); err != nil {
		return nil, err
	}

	if err := r.validateFileName(record, oldName); err != nil {
		return nil, err
	}

	src := r.filePath(category, record, oldName)
	if err := requireFile(src, "file", oldName); err != nil {
		return nil, err
	}

	_, ext := domain.SplitExt(oldName)
	newName := domain.WithExt(newBase, ext)
	if err := r.validateFileName(record, newName); err != nil {
		return nil, err
	}
	if newName == oldName {
		return r.lookupFile(category, record, oldName), nil
	}

	dst := r.filePath(category, record, newName)
	if err := requireAbsent(dst, "file", newName); err != nil {
		return nil, err
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to rename file: %w", err)
	}

	err := errors.Join(
		r.index.Remove(category, record, oldName),
		r.index.Append(category, record, newName),
	)
	if err := r.afterChange(err, category); err != nil {
		return nil, err
	}
	return r.lookupFile(category, record, newName), nil
}

// MoveFile moves a file into another record, possibly in another category
func (r *Repository) MoveFile(category, record, fileName, dstCategory, dstRecord string) (*domain.File, error) {
	if err := validateNames(category, record, dstCategory, dstRecord); err != nil {
		return nil, err
	}

	if err := r.validateFileName(record, fileName); err != nil {
		return nil, err
	}

	src := r.filePath(category, record, fileName)
	if err := requireFile(src, "file", fileName); err != nil {
		return nil, err
	}
	if domain.IsMetadataArtifact(dstRecord, fileName) {
		return nil, fmt.Errorf("%w: %q is reserved for the record index", domain.ErrInvalidName, fileName)
	}

	dst := r.filePath(dstCategory, dstRecord, fileName)
	if err := requireAbsent(dst, "file", dstCategory+"/"+dstRecord+"/"+fileName); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination record: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to move file: %w", err)
	}

	err := errors.Join(
		r.index.Remove(category, record, fileName),
		r.index.Append(dstCategory, dstRecord, fileName),
	)
	if err := r.afterChange(err, category, dstCategory); err != nil {
		return nil, err
	}
	return r.lookupFile(dstCategory, dstRecord, fileName), nil
}

// DeleteFile removes a file and its index entry
func (r *Repository) DeleteFile(category, record, fileName string) error {
	if err := validateNames(category, record); err != nil {
		return err
	}

	if err := r.validateFileName(record, fileName); err != nil {
		return err
	}

	path := r.filePath(category, record, fileName)
	if err := requireFile(path, "file", fileName); err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return r.afterChange(r.index.Remove(category, record, fileName), category)
}

// RenameRecord renames a record directory together with its index file
func (r *Repository) RenameRecord(category, oldName, newName string) (*domain.Record, error) {
	if err := validateNames(category, oldName, newName); err != nil {
		return nil, err
	}

	src := r.recordPath(category, oldName)
	if err := requireDir(src, "record", category+"/"+oldName); err != nil {
		return nil, err
	}
	dst := r.recordPath(category, newName)
	if err := requireAbsent(dst, "record", category+"/"+newName); err != nil {
		return nil, err
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to rename record: %w", err)
	}

	if err := r.afterChange(r.index.Relocate(category, newName, oldName), category); err != nil {
		return nil, err
	}
	return &domain.Record{Name: newName, Category: category, Path: dst}, nil
}

// MoveRecord moves a record into another category, creating it if needed
func (r *Repository) MoveRecord(category, record, dstCategory string) (*domain.Record, error) {
	if err := validateNames(category, record, dstCategory); err != nil {
		return nil, err
	}

	src := r.recordPath(category, record)
	if err := requireDir(src, "record", category+"/"+record); err != nil {
		return nil, err
	}
	dst := r.recordPath(dstCategory, record)
	if err := requireAbsent(dst, "record", dstCategory+"/"+record); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.categoryPath(dstCategory), 0755); err != nil {
		return nil, fmt.Errorf("failed to create destination category: %w", err)
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to move record: %w", err)
	}

	if err := r.afterChange(nil, category, dstCategory); err != nil {
		return nil, err
	}
	return &domain.Record{Name: record, Category: dstCategory, Path: dst}, nil
}

// DeleteRecord removes a record and everything in it
func (r *Repository) DeleteRecord(category, record string) error {
	if err := validateNames(category, record); err != nil {
		return err
	}

	path := r.recordPath(category, record)
	if err := requireDir(path, "record", category+"/"+record); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	return r.afterChange(nil, category)
}

// RenameCategory renames a category directory and carries its registry flag over
func (r *Repository) RenameCategory(oldName, newName string) (*domain.Category, error) {
	if err := validateNames(oldName, newName); err != nil {
		return nil, err
	}

	src := r.categoryPath(oldName)
	if err := requireDir(src, "category", oldName); err != nil {
		return nil, err
	}
	dst := r.categoryPath(newName)
	if err := requireAbsent(dst, "category", newName); err != nil {
		return nil, err
	}
	if err := os.Rename(src, dst); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	if err := r.registry.RenameCategory(oldName, newName); err != nil {
		return nil, err
	}

	dirty, known := r.registry.Snapshot()[newName]
	return &domain.Category{Name: newName, Path: dst, Dirty: dirty || !known}, nil
}

// DeleteCategory removes a category and forgets its registry flag
func (r *Repository) DeleteCategory(name string) error {
	if err := domain.ValidateFolderName(name); err != nil {
		return err
	}

	path := r.categoryPath(name)
	if err := requireDir(path, "category", name); err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return r.registry.RemoveCategory(name)
}

// afterChange flags the touched categories even when the index update failed,
// so the next reconciliation repairs the index.
func (r *Repository) afterChange(indexErr error, categories ...string) error {
	errs := []error{indexErr}
	for _, category := range categories {
		errs = append(errs, r.registry.MarkChanged(category))
	}
	return errors.Join(errs...)
}

func (r *Repository) lookupFile(category, record, name string) *domain.File {
	entries := r.index.Entries(category, record)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].FileName == name {
			f := r.toFile(category, record, entries[i])
			return &f
		}
	}
	f := r.toFile(category, record, domain.Entry{Index: -1, FileName: name})
	return &f
}

func (r *Repository) toFile(category, record string, e domain.Entry) domain.File {
	return domain.File{
		Index:     e.Index,
		Name:      e.FileName,
		Timestamp: e.Timestamp,
		Category:  category,
		Record:    record,
		Path:      r.filePath(category, record, e.FileName),
	}
}

func (r *Repository) validateFileName(record, name string) error {
	if err := domain.ValidateName(name); err != nil {
		return err
	}
	if domain.IsMetadataArtifact(record, name) {
		return fmt.Errorf("%w: %q is reserved for the record index", domain.ErrInvalidName, name)
	}
	return nil
}

// Helper methods for building paths

func (r *Repository) categoryPath(category string) string {
	return filepath.Join(r.dataDir, category)
}

func (r *Repository) recordPath(category, record string) string {
	return filepath.Join(r.dataDir, category, record)
}

func (r *Repository) filePath(category, record, name string) string {
	return filepath.Join(r.dataDir, category, record, name)
}

func validateNames(names ...string) error {
	for _, name := range names {
		if err := domain.ValidateFolderName(name); err != nil {
			return err
		}
	}
	return nil
}

func requireDir(path, kind, name string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%s %s: %w", kind, name, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", kind, err)
	}
	return nil
}

func requireFile(path, kind, name string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return fmt.Errorf("%s %s: %w", kind, name, domain.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", kind, err)
	}
	return nil
}

func requireAbsent(path, kind, name string) error {
	if fileutil.Exists(path) {
		return fmt.Errorf("%s %s: %w", kind, name, domain.ErrAlreadyExists)
	}
	return nil
}

var _ ports.FilingStore = (*Repository)(nil)
