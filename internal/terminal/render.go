package terminal

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/vedit/internal/editor"
)

// Options controls the screen layout.
type Options struct {
	// LineNumbers draws a line number gutter.
	LineNumbers bool

	// StatusBar reserves the row above the command line for the mode,
	// buffer name and cursor position.
	StatusBar bool
}

// Styles used by the renderer.
var (
	styleText      = tcell.StyleDefault
	styleGutter    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFiller    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatusBar = tcell.StyleDefault.Reverse(true)
	styleError     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Renderer draws an editor.Context onto a Backend.
//
// Layout from the top: the text of the window being edited, the status
// bar, and one row for the command line or the status message.
type Renderer struct {
	backend Backend
	opts    Options
	pending string
}

// NewRenderer creates a renderer drawing on b.
func NewRenderer(b Backend, opts Options) *Renderer {
	return &Renderer{backend: b, opts: opts}
}

// SetOptions changes the layout. The next Render should be forced.
func (r *Renderer) SetOptions(opts Options) {
	r.opts = opts
}

// SetPending sets the partially typed chord shown in the status bar.
func (r *Renderer) SetPending(s string) {
	r.pending = s
}

// ViewHeight returns the number of rows available to text windows.
func (r *Renderer) ViewHeight() int {
	_, h := r.backend.Size()
	h-- // command line
	if r.opts.StatusBar {
		h--
	}
	return max(h, 1)
}

// Render draws the editor. The text area is only redrawn when the window
// being edited is among dirty or force is set; the bottom rows and the
// cursor are always redrawn.
func (r *Renderer) Render(ed *editor.Context, dirty []int, force bool) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	if force {
		r.backend.Clear()
	}

	display := ed.DisplayWindow()
	gutter := r.gutterWidth(display)
	viewHeight := r.ViewHeight()

	if force || slices.Contains(dirty, ed.DisplayIndex()) {
		r.drawWindow(display, gutter, viewHeight, width)
	}

	row := viewHeight
	if r.opts.StatusBar && row < height {
		r.drawStatusBar(ed, row, width)
		row++
	}
	if row < height {
		r.drawBottomLine(ed, row, width)
	}

	r.placeCursor(ed, gutter, viewHeight, width, height)
	r.backend.Show()
}

func (r *Renderer) gutterWidth(w *editor.Window) int {
	if !r.opts.LineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(w.Buffer().LineCount())), 3) + 1
}

func (r *Renderer) drawWindow(w *editor.Window, gutter, height, width int) {
	lines := w.OnScreen(height)
	first := w.Buffer().Cursor().ScrollRow
	for y := 0; y < height; y++ {
		x := 0
		if y < len(lines) {
			if gutter > 0 {
				num := fmt.Sprintf("%*d ", gutter-1, first+y+1)
				x = r.drawText(0, y, num, styleGutter, gutter)
			}
			x = r.drawText(x, y, lines[y], styleText, width)
		} else {
			x = r.drawText(0, y, "~", styleFiller, width)
		}
		r.clearTo(x, y, width, styleText)
	}
}

func (r *Renderer) drawStatusBar(ed *editor.Context, y, width int) {
	b := ed.DisplayWindow().Buffer()
	left := " " + ed.Mode().DisplayName() + "  " + b.Name()
	if b.Modified() {
		left += " [+]"
	}
	c := b.Cursor()
	right := fmt.Sprintf("%s  %d,%d ", r.pending, c.Row+1, c.Col+1)

	x := r.drawText(0, y, left, styleStatusBar, width)
	start := max(width-runewidth.StringWidth(right), x)
	r.clearTo(x, y, start, styleStatusBar)
	x = r.drawText(start, y, right, styleStatusBar, width)
	r.clearTo(x, y, width, styleStatusBar)
}

func (r *Renderer) drawBottomLine(ed *editor.Context, y, width int) {
	var x int
	if ed.Focused() == editor.CommandLine {
		if lines := ed.CommandWindow().OnScreen(1); len(lines) > 0 {
			x = r.drawText(0, y, lines[0], styleText, width)
		}
	} else if s := ed.Status(); s.Text != "" {
		style := styleText
		if s.Error {
			style = styleError
		}
		x = r.drawText(0, y, s.Text, style, width)
	}
	r.clearTo(x, y, width, styleText)
}

func (r *Renderer) placeCursor(ed *editor.Context, gutter, viewHeight, width, height int) {
	r.backend.SetCursorStyle(ed.Mode().CursorStyle())

	var x, y int
	if ed.Focused() == editor.CommandLine {
		x, _ = ed.CommandWindow().CursorScreenPos()
		y = height - 1
	} else {
		x, y = ed.FocusedWindow().CursorScreenPos()
		x += gutter
		if y < 0 || y >= viewHeight {
			r.backend.HideCursor()
			return
		}
	}
	r.backend.ShowCursor(min(x, width-1), y)
}

// drawText draws s from column x, stopping before limit, and returns the
// column after the last cell drawn. Zero-width runes are skipped so the
// columns agree with editor.Window.CursorScreenPos.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style, limit int) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.backend.SetContent(x, y, ch, style)
		x += w
	}
	return x
}

func (r *Renderer) clearTo(x, y, limit int, style tcell.Style) {
	for ; x < limit; x++ {
		r.backend.SetContent(x, y, ' ', style)
	}
}
