package dispatcher

import "errors"

var (
	// ErrNotRunning is returned by Dispatch after Quit.
	ErrNotRunning = errors.New("dispatcher: editor is not running")

	// ErrInvalidCommand is returned for a command kind outside the set.
	ErrInvalidCommand = errors.New("dispatcher: invalid command")

	// ErrPanic indicates a command panicked and was recovered.
	ErrPanic = errors.New("dispatcher: command panic")

	// ErrNotImplemented is reported by commands that are bound but have
	// no effect yet.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoScriptHost is returned when a script is run without a host.
	ErrNoScriptHost = errors.New("no script host")

	// ErrExpired is returned by ScriptAPI methods called after the
	// evaluation that received the API has returned.
	ErrExpired = errors.New("dispatcher: script api used outside its evaluation")
)

// UserInputError reports a malformed command line. Its message is shown
// to the user as is.
type UserInputError struct {
	Msg string
}

func (e *UserInputError) Error() string {
	return e.Msg
}

// ScriptError wraps a failure from the script host.
type ScriptError struct {
	Err error
}

func (e *ScriptError) Error() string {
	return "script error: " + e.Err.Error()
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
