// Package keymap provides the per-mode key binding table.
//
// A Table maps key sequences to commands separately for each mode. It is a
// prefix tree keyed by each event's canonical string, so a lookup of a
// partially typed chord answers in one walk whether it:
//
//   - fires a command now (Complete),
//   - matches a command but is also the prefix of a longer binding
//     (CompleteExtensible, the caller waits),
//   - is only a prefix (Prefix, the caller waits), or
//   - matches nothing (NoMatch, the caller flushes).
//
// Binding an existing sequence replaces it. The table may be changed at
// run time, for example by scripts.
//
// # Keymap files
//
// Keymaps are declared in YAML and applied over the defaults:
//
//	name: my-keys
//	mode: normal
//	bindings:
//	  - keys: "g g"
//	    command: JumpToFirstLineBuffer
//	  - keys: "<C-t>"
//	    command: Print
//	    arg: hello
//
// A file may hold several documents separated by "---".
package keymap
