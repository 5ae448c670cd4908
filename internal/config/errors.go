package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed is wrapped by every ValidationError.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNotLoaded indicates Reload was called before Load.
	ErrNotLoaded = errors.New("config not loaded")
)

// ValidationError names the setting that failed validation.
type ValidationError struct {
	// Key is the dotted setting path, e.g. "editor.tab_width".
	Key string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Key, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
