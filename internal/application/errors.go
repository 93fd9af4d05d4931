package application

import (
	"fmt"

	"sfadsms/internal/domain"
)

// Sentinel errors for common conditions, shared with the adapters
var (
	ErrNotFound          = domain.ErrNotFound
	ErrAlreadyExists     = domain.ErrAlreadyExists
	ErrInvalidName       = domain.ErrInvalidName
	ErrRegistryNotLoaded = domain.ErrRegistryNotLoaded
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// MoveError represents a move-related failure
type MoveError struct {
	Source string
	Dest   string
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %s", e.Source, e.Dest, e.Reason)
}
