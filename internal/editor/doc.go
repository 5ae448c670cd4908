// Package editor holds the editor's central state.
//
// A Context owns the windows, the buffers they show, the clipboard
// register, the status message and the current mode. Window 0 is always
// the command-line window; text windows start at index 1.
//
// Context is owned by the run loop and handed to one command at a time.
// It is not safe for concurrent use.
//
// # Render boundary
//
// The package performs no drawing. After each command a frontend calls
// TakeDirty for the windows to redraw, then Window.OnScreen for their
// visible lines and Window.CursorScreenPos for the cursor cell.
package editor
