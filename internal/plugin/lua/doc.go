// Package lua is the editor's script host, built on gopher-lua.
//
// A Host owns one sandboxed Lua state. The io, os, debug and package
// libraries are not opened, and dofile, loadfile, load and loadstring are
// removed. print writes to the host's log instead of stdout.
//
// Scripts reach the editor through the global table "editor":
//
//	editor.cursor_up(n)          -- also cursor_down, cursor_left, cursor_right
//	editor.set_cursor_row(row)   -- rows and columns are 0-based
//	editor.set_cursor_col(col)
//	editor.set_scroll_row(row)
//	editor.map(mode, keys, fn)   -- bind keys to a Lua function
//	editor.map(mode, keys, name [, arg]) -- or to a named command
//
// The table works only while the host is evaluating code for the editor.
// A function saved and called later, for example from a coroutine left
// suspended, gets a Lua error.
//
// Functions bound with editor.map are kept by the host and referred to by
// an opaque token. The editor stores the token in its key binding and hands
// it back to Invoke when the keys are pressed.
package lua
