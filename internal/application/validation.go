package application

import (
	"errors"
	"fmt"
	"strings"

	"sfadsms/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateName checks that a category, record or file name is required and storable.
// Returns a ValidationError wrapping domain.ErrInvalidName for unusable names.
func ValidateName(fieldName, value string) error {
	if err := ValidateRequired(fieldName, value); err != nil {
		return err
	}
	if err := domain.ValidateName(value); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: strings.TrimPrefix(err.Error(), domain.ErrInvalidName.Error()+": "),
			Err:     domain.ErrInvalidName,
		}
	}
	return nil
}

// IsValidationError reports whether err is caused by bad input rather than the store
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) || errors.Is(err, domain.ErrInvalidName)
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "dstCategory" -> "destination category")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"category":    "category",
		"record":      "record",
		"file":        "file name",
		"source":      "source file",
		"newName":     "new name",
		"dstCategory": "destination category",
		"dstRecord":   "destination record",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
