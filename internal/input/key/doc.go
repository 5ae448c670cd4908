// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: identifies a special key, or KeyRune for a character
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//   - Sequence: an ordered series of events forming a chord
//
// # Key Specifications
//
// Key specifications can be written in several formats:
//
//   - Simple keys: "a", "G", "$", "Enter", "Esc"
//   - With modifiers: "Ctrl+S", "Alt+F4"
//   - Vim-style: "<C-s>", "<A-f>", "<CR>", "<Esc>", "<Space>"
//
// Sequences are written either space separated ("g g", "<C-w> c") or as a
// continuous string ("gg", "<C-w>c", "dd").
//
// Every event has a canonical string (Event.String) that ignores Shift on
// characters, since Shift is already part of the character. Binding tables
// key on that string.
package key
