package editor

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/vedit/internal/engine/buffer"
)

// Window is a viewport onto one buffer. The cursor and scroll row live in
// the buffer, so windows showing the same buffer share them.
type Window struct {
	buf    *buffer.Buffer
	height int
}

// NewWindow creates a window showing b with a viewport of height lines.
func NewWindow(b *buffer.Buffer, height int) *Window {
	return &Window{buf: b, height: max(height, 1)}
}

// Buffer returns the buffer shown in the window.
func (w *Window) Buffer() *buffer.Buffer {
	return w.buf
}

// SetBuffer shows b in the window.
func (w *Window) SetBuffer(b *buffer.Buffer) {
	w.buf = b
	w.buf.Follow(w.height)
}

// Height returns the viewport height in lines.
func (w *Window) Height() int {
	return w.height
}

// SetHeight resizes the viewport and keeps the cursor visible.
func (w *Window) SetHeight(h int) {
	w.height = max(h, 1)
	w.buf.Follow(w.height)
}

// OnScreen returns the lines visible in a viewport of height lines,
// starting at the scroll row. Fewer lines are returned near the end of the
// buffer.
func (w *Window) OnScreen(height int) []string {
	first := w.buf.Cursor().ScrollRow
	last := min(first+max(height, 0), w.buf.LineCount())
	lines := make([]string, 0, max(last-first, 0))
	for row := first; row < last; row++ {
		lines = append(lines, w.buf.LineText(row))
	}
	return lines
}

// CursorScreenPos returns the cursor's cell relative to the window's top
// left corner. The column counts display cells, so wide characters take
// two.
func (w *Window) CursorScreenPos() (col, row int) {
	c := w.buf.Cursor()
	line := []rune(w.buf.LineText(c.Row))
	col = runewidth.StringWidth(string(line[:min(c.Col, len(line))]))
	return col, c.Row - c.ScrollRow
}
