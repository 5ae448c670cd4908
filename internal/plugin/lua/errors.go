package lua

import "errors"

// Errors for Lua state operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution times out.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrUnknownToken is returned by Invoke for a token the host did not
	// issue.
	ErrUnknownToken = errors.New("lua: unknown function token")

	// ErrNotEvaluating is raised inside Lua when the editor table is used
	// outside an evaluation.
	ErrNotEvaluating = errors.New("editor api used outside an evaluation")
)
