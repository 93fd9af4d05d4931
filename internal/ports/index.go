package ports

import "sfadsms/internal/domain"

// EntryCounter counts metadata lines without parsing them
type EntryCounter interface {
	CountEntries(category, record string) int
}

// MetadataIndex owns the per-record index files
type MetadataIndex interface {
	EntryCounter

	// Fast paths used by upload, rename, move and delete
	Append(category, record, fileName string) error
	Remove(category, record, fileName string) error

	// FullSync reconciles a record's index with the files on disk
	FullSync(category, record string) (domain.RecordSync, error)

	// Entries returns the parsed entries; unreadable files yield none
	Entries(category, record string) []domain.Entry

	// Relocate renames a record's index file after the record directory was renamed
	Relocate(category, record, oldRecord string) error
}
