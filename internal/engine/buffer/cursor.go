package buffer

import "fmt"

// Cursor is a buffer position plus the state that vertical motion and
// scrolling depend on. Rows and columns are 0-based; columns count
// characters.
type Cursor struct {
	Row int
	Col int

	// StickyCol is the last deliberately chosen column. Vertical motion
	// aims for it and clamps to the destination line.
	StickyCol int

	// ScrollRow is the first visible line.
	ScrollRow int
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Cursor returns a copy of the buffer's cursor.
func (b *Buffer) Cursor() Cursor {
	return b.cursor
}

// SetComposing controls whether motions may leave the cursor one past the
// last character of a line. It is on while insertions are being composed;
// when off, motions land on a character. Switching it off clamps the
// cursor.
func (b *Buffer) SetComposing(on bool) {
	wasOn := b.composing
	b.composing = on
	if wasOn && !on {
		b.clampCursor()
	}
}

// Composing reports whether the cursor may rest past the line end.
func (b *Buffer) Composing() bool {
	return b.composing
}

// maxCol returns the largest column the cursor may rest on in row.
func (b *Buffer) maxCol(row int) int {
	n := b.LineLen(row)
	if b.composing || n == 0 {
		return n
	}
	return n - 1
}

// MoveUp moves the cursor up n lines.
func (b *Buffer) MoveUp(n int) {
	b.setRow(b.cursor.Row - n)
}

// MoveDown moves the cursor down n lines.
func (b *Buffer) MoveDown(n int) {
	b.setRow(b.cursor.Row + n)
}

// setRow moves to row, recomputing the column from the sticky column.
func (b *Buffer) setRow(row int) {
	b.cursor.Row = clamp(row, 0, b.LineCount()-1)
	b.cursor.Col = min(b.cursor.StickyCol, b.maxCol(b.cursor.Row))
}

// MoveLeft moves the cursor left n columns without leaving the line.
func (b *Buffer) MoveLeft(n int) {
	b.setCol(b.cursor.Col - n)
}

// MoveRight moves the cursor right n columns without leaving the line.
func (b *Buffer) MoveRight(n int) {
	b.setCol(b.cursor.Col + n)
}

// setCol moves to col within the current line and makes it sticky.
func (b *Buffer) setCol(col int) {
	b.cursor.Col = clamp(col, 0, b.maxCol(b.cursor.Row))
	b.cursor.StickyCol = b.cursor.Col
}

// Home moves to the start of the line.
func (b *Buffer) Home() {
	b.setCol(0)
}

// End moves to the end of the line.
func (b *Buffer) End() {
	b.setCol(b.LineLen(b.cursor.Row))
}

// JumpFirstLine moves to the first line.
func (b *Buffer) JumpFirstLine() {
	b.setRow(0)
}

// JumpLastLine moves to the last line.
func (b *Buffer) JumpLastLine() {
	b.setRow(b.LineCount() - 1)
}

// SetCursorRow moves directly to row, clamped.
func (b *Buffer) SetCursorRow(row int) {
	b.setRow(row)
}

// SetCursorCol moves directly to col on the current line, clamped.
func (b *Buffer) SetCursorCol(col int) {
	b.setCol(col)
}

// maxScroll returns the largest legal scroll row for a viewport height.
func (b *Buffer) maxScroll(height int) int {
	return max(0, b.LineCount()-max(height, 1))
}

// SetScrollRow sets the first visible line, clamped for height.
func (b *Buffer) SetScrollRow(row, height int) {
	b.cursor.ScrollRow = clamp(row, 0, b.maxScroll(height))
	b.keepCursorInView(height)
}

// ScrollUp shifts the viewport up n lines. The cursor is pulled back into
// view if it falls off the bottom.
func (b *Buffer) ScrollUp(n, height int) {
	b.SetScrollRow(b.cursor.ScrollRow-n, height)
}

// ScrollDown shifts the viewport down n lines. The cursor is pulled back
// into view if it falls off the top.
func (b *Buffer) ScrollDown(n, height int) {
	b.SetScrollRow(b.cursor.ScrollRow+n, height)
}

func (b *Buffer) keepCursorInView(height int) {
	height = max(height, 1)
	switch {
	case b.cursor.Row < b.cursor.ScrollRow:
		b.setRow(b.cursor.ScrollRow)
	case b.cursor.Row >= b.cursor.ScrollRow+height:
		b.setRow(b.cursor.ScrollRow + height - 1)
	}
}

// Follow adjusts the scroll row so the cursor is visible in a viewport of
// height lines.
func (b *Buffer) Follow(height int) {
	height = max(height, 1)
	c := &b.cursor
	if c.Row < c.ScrollRow {
		c.ScrollRow = c.Row
	}
	if c.Row >= c.ScrollRow+height {
		c.ScrollRow = c.Row - height + 1
	}
	c.ScrollRow = clamp(c.ScrollRow, 0, b.maxScroll(height))
}

// clampCursor forces the cursor back into the buffer's bounds.
func (b *Buffer) clampCursor() {
	c := &b.cursor
	c.Row = clamp(c.Row, 0, b.LineCount()-1)
	c.Col = clamp(c.Col, 0, b.maxCol(c.Row))
	c.StickyCol = max(c.StickyCol, 0)
}

// Validate reports whether the cursor is inside the buffer, with
// 0 <= Col <= LineLen(Row), and the scroll row is legal for a viewport of
// height lines. Anything out of bounds is clamped before returning false.
func (b *Buffer) Validate(height int) bool {
	before := b.cursor
	c := &b.cursor
	c.Row = clamp(c.Row, 0, b.LineCount()-1)
	c.Col = clamp(c.Col, 0, b.LineLen(c.Row))
	c.StickyCol = max(c.StickyCol, 0)
	c.ScrollRow = clamp(c.ScrollRow, 0, b.maxScroll(height))
	return before == b.cursor
}
