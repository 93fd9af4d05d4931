package domain

import "errors"

// Sentinel errors shared by adapters and the application layer
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidName       = errors.New("invalid name")
	ErrRegistryNotLoaded = errors.New("manifest registry not loaded")
)
