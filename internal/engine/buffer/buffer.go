package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/vedit/internal/engine/rope"
)

// DefaultName is the display name of a buffer with no file.
const DefaultName = "[No Name]"

// Buffer is a rope-backed text buffer with an owned cursor.
type Buffer struct {
	id         uuid.UUID
	name       string
	path       string
	rope       rope.Rope
	cursor     Cursor
	lineEnding LineEnding
	modified   bool
	composing  bool
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:   uuid.New(),
		name: DefaultName,
		rope: rope.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString creates a buffer with initial content. Carriage returns
// preceding newlines are stripped.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.rope = rope.FromString(normalizeLineEndings(s))
	return b
}

func normalizeLineEndings(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ID returns the buffer's unique identity.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Name returns the display name.
func (b *Buffer) Name() string {
	return b.name
}

// Path returns the associated file path, or "" if there is none.
func (b *Buffer) Path() string {
	return b.path
}

// Modified reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) Modified() bool {
	return b.modified
}

// LineEnding returns the line ending written by Save.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	return b.rope.String()
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.rope.Len()
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return b.rope.LineCount()
}

// LineLen returns the length of row in characters, excluding the newline.
func (b *Buffer) LineLen(row int) int {
	return b.rope.LineLen(row)
}

// LineText returns the text of row, excluding the newline.
func (b *Buffer) LineText(row int) string {
	return b.rope.LineText(row)
}

// offset converts a clamped (row, col) to a rune offset.
func (b *Buffer) offset(row, col int) int {
	row = clamp(row, 0, b.LineCount()-1)
	return b.rope.LineStart(row) + clamp(col, 0, b.LineLen(row))
}

// InsertTextAt inserts text at (row, col), which is clamped into the
// buffer. The cursor is placed at the end of the inserted text.
func (b *Buffer) InsertTextAt(row, col int, text string) {
	text = normalizeLineEndings(text)
	if text == "" {
		return
	}
	row = clamp(row, 0, b.LineCount()-1)
	col = clamp(col, 0, b.LineLen(row))
	b.rope = b.rope.Insert(b.offset(row, col), text)
	b.modified = true

	if n := strings.Count(text, "\n"); n > 0 {
		row += n
		col = utf8.RuneCountInString(text[strings.LastIndexByte(text, '\n')+1:])
	} else {
		col += utf8.RuneCountInString(text)
	}
	b.cursor.Row, b.cursor.Col, b.cursor.StickyCol = row, col, col
}

// InsertText inserts text at the cursor.
func (b *Buffer) InsertText(text string) {
	b.InsertTextAt(b.cursor.Row, b.cursor.Col, text)
}

// NewLine splits the current line at the cursor.
func (b *Buffer) NewLine() {
	b.InsertText("\n")
}

// Backspace deletes the character before the cursor. At column 0 the
// current line is joined onto the previous one. It is a no-op at the start
// of the buffer.
func (b *Buffer) Backspace() {
	c := &b.cursor
	switch {
	case c.Col > 0:
		off := b.offset(c.Row, c.Col)
		b.rope = b.rope.Delete(off-1, off)
		c.Col--
	case c.Row > 0:
		prevLen := b.LineLen(c.Row - 1)
		off := b.rope.LineStart(c.Row)
		b.rope = b.rope.Delete(off-1, off)
		c.Row--
		c.Col = prevLen
	default:
		return
	}
	b.modified = true
	b.clampCursor()
	c.StickyCol = c.Col
}

// DeleteChar deletes the character under the cursor. At the end of a line
// it joins the next line. It is a no-op at the end of the buffer.
func (b *Buffer) DeleteChar() {
	off := b.offset(b.cursor.Row, b.cursor.Col)
	if off >= b.rope.Len() {
		return
	}
	b.rope = b.rope.Delete(off, off+1)
	b.modified = true
	b.clampCursor()
}

// InsertLine inserts text as a new line before index. An index equal to
// LineCount appends after the last line. Embedded newlines produce several
// lines. The cursor keeps pointing at the same text.
func (b *Buffer) InsertLine(index int, text string) error {
	lines := b.LineCount()
	if index < 0 || index > lines {
		return ErrLineOutOfRange
	}
	text = normalizeLineEndings(text)
	if index == lines {
		b.rope = b.rope.Insert(b.rope.Len(), "\n"+text)
	} else {
		b.rope = b.rope.Insert(b.rope.LineStart(index), text+"\n")
	}
	b.modified = true
	if index <= b.cursor.Row {
		b.cursor.Row += strings.Count(text, "\n") + 1
	}
	return nil
}

// DeleteLine removes line index and returns its text without the newline.
// Deleting the only line empties it. The cursor row is clamped and its
// column recomputed from the sticky column.
func (b *Buffer) DeleteLine(index int) (string, error) {
	return b.DeleteLines(index, 1)
}

// DeleteLines removes up to n lines starting at index and returns their
// text joined by newlines.
func (b *Buffer) DeleteLines(index, n int) (string, error) {
	lines := b.LineCount()
	if index < 0 || index >= lines {
		return "", ErrLineOutOfRange
	}
	end := min(index+max(n, 1), lines)
	start := b.rope.LineStart(index)
	stop := b.rope.LineEnd(end - 1)
	removed := b.rope.Slice(start, stop)

	switch {
	case end < lines:
		stop++ // take the trailing newline
	case index > 0:
		start-- // last lines: take the preceding newline instead
	}
	b.rope = b.rope.Delete(start, stop)
	b.modified = true

	if b.cursor.Row >= end {
		b.cursor.Row -= end - index
	} else if b.cursor.Row >= index {
		b.cursor.Row = index
	}
	b.setRow(b.cursor.Row)
	return removed, nil
}

// Lines returns up to n lines starting at index joined by newlines.
func (b *Buffer) Lines(index, n int) string {
	if index < 0 || index >= b.LineCount() {
		return ""
	}
	end := min(index+max(n, 1), b.LineCount())
	return b.rope.Slice(b.rope.LineStart(index), b.rope.LineEnd(end-1))
}

// Reset replaces the whole content and moves the cursor home.
func (b *Buffer) Reset(text string) {
	b.rope = rope.FromString(normalizeLineEndings(text))
	b.cursor = Cursor{}
	b.modified = true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	return max(lo, min(v, hi))
}
