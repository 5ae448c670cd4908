package editor

import "errors"

var (
	// ErrInvariant is returned by Validate when state had to be clamped
	// back into bounds.
	ErrInvariant = errors.New("editor: invariant violation")

	// ErrLastWindow is returned when closing the only text window.
	ErrLastWindow = errors.New("cannot close last window")

	// ErrCommandWindow is returned when closing the command-line window.
	ErrCommandWindow = errors.New("cannot close the command-line window")

	// ErrNoWindow is returned for a window index out of range.
	ErrNoWindow = errors.New("editor: no such window")
)
