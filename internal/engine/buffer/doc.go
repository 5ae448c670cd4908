// Package buffer provides the editor's text buffer: rope-backed text with
// an owned cursor addressed by (row, column).
//
// The buffer package provides:
//
//   - Line and column indexed edits through the underlying rope
//   - A cursor with a sticky column and a clamped scroll window
//   - Word and first-non-blank motions confined to the current line
//   - Whole-line insert and delete used by yank, delete and paste
//   - Flat-file load and save with line ending preservation
//
// Columns count characters (runes), not bytes. Every cursor operation
// clamps into the buffer's bounds; none of them fail.
//
// Basic usage:
//
//	buf := buffer.FromString("abc\nde")
//	buf.MoveRight(2)        // (0, 2)
//	buf.MoveDown(1)         // (1, 2), sticky column 2
//	buf.InsertText("!")     // "de!"
//
// A Buffer is not safe for concurrent use. It is owned by the editor's run
// loop and mutated only by the command executing there.
package buffer
