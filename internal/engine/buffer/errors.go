package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrNoPath is returned by Save when neither the buffer nor the caller
	// supplies a file path.
	ErrNoPath = errors.New("buffer: no file name")

	// ErrLineOutOfRange is returned by whole-line operations given an
	// index outside the buffer.
	ErrLineOutOfRange = errors.New("buffer: line out of range")
)
