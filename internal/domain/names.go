package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FieldSeparator separates the fields of index and manifest lines
const FieldSeparator = "|"

// ValidateName checks that a category, record, or file name can be stored on
// disk and written to an index line unescaped.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case trimmed != name:
		return fmt.Errorf("%w: %q has leading or trailing spaces", ErrInvalidName, name)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.Contains(name, FieldSeparator):
		return fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, FieldSeparator)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsAny(name, "\n\r"):
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}
	return nil
}

// IsHidden reports whether a directory name is hidden (".git", ".Trash-1000").
// Hidden directories are never categories or records.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ValidateFolderName checks a category or record name. Unlike file names,
// folder names may not be hidden.
func ValidateFolderName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if IsHidden(name) {
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	}
	return nil
}

// SplitExt splits a file name into base and extension ("report.pdf" -> "report", ".pdf").
// Dot files like ".env" have no extension.
func SplitExt(name string) (string, string) {
	ext := filepath.Ext(name)
	if ext == name {
		return name, ""
	}
	return strings.TrimSuffix(name, ext), ext
}

// WithExt returns base with ext appended unless base already ends with it
func WithExt(base, ext string) string {
	if ext == "" || strings.HasSuffix(strings.ToLower(base), strings.ToLower(ext)) {
		return base
	}
	return base + ext
}
