// Package rope provides an immutable rope for buffer text storage.
//
// A rope is a balanced tree whose leaves hold bounded text chunks and whose
// internal nodes carry aggregated summaries (bytes, runes and newlines). All
// positions exposed by this package are rune offsets, so callers index text
// by character rather than by encoded byte.
//
// Key features:
//   - O(log n) insertion, deletion and line lookup
//   - Operations return new ropes; originals are never modified
//   - Line starts are found by descending newline counts, not by scanning
//
// Basic usage:
//
//	r := rope.FromString("héllo world")
//	r = r.Insert(5, ",")       // "héllo, world"
//	r = r.Delete(0, 7)         // "world"
//	line := r.LineText(0)      // "world"
package rope
