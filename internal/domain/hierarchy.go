package domain

import (
	"slices"
	"strings"
)

// MetadataFileSuffix is appended to a record name to form its index file name.
const MetadataFileSuffix = "data.txt"

// Category is a top-level folder under the data directory (e.g. "Grade7")
type Category struct {
	Name  string
	Path  string
	Dirty bool // Registry flag; true means a full sync is pending
}

// Record is a named folder inside a category (e.g. "JuanDelaCruz")
type Record struct {
	Name     string
	Category string
	Path     string
}

// File is a stored document inside a record, as listed by the record's index
type File struct {
	Index     int
	Name      string
	Timestamp string
	Category  string
	Record    string
	Path      string
}

// MetadataFileName returns the index file name for a record ("<record>data.txt")
func MetadataFileName(record string) string {
	return record + MetadataFileSuffix
}

// IsMetadataArtifact reports whether name is the record's index file or a temp
// file left behind by an interrupted rewrite of it ("<record>data.txt123456").
func IsMetadataArtifact(record, name string) bool {
	meta := MetadataFileName(record)
	if name == meta {
		return true
	}
	rest, ok := strings.CutPrefix(name, meta)
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SortCategories sorts categories by name in ascending order
func SortCategories(categories []Category) {
	slices.SortFunc(categories, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// SortRecords sorts records by name in ascending order
func SortRecords(records []Record) {
	slices.SortFunc(records, func(a, b Record) int {
		return strings.Compare(a.Name, b.Name)
	})
}
