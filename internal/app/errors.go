// Package app wires the editor together and runs it: configuration,
// logging, the key pipeline, the script host, the default ex commands and
// the terminal.
package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrQuit signals that the application exited normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates Run was called twice.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrTerminalClosed is returned by Run when the terminal stops
	// delivering events.
	ErrTerminalClosed = errors.New("terminal closed")

	// ErrUnsavedChanges is reported by :q while a buffer is modified.
	ErrUnsavedChanges = errors.New("no write since last change (add ! to override)")
)

// InitError represents an initialization error.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
