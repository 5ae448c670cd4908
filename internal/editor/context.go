package editor

import (
	"fmt"
	"sort"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/mode"
)

// CommandLine is the index of the command-line window.
const CommandLine = 0

// CommandLineName is the name of the command-line buffer.
const CommandLineName = "[Command Line]"

// DefaultTabWidth is the InsertTab width when none is configured.
const DefaultTabWidth = 4

// Status is the message shown to the user after a command.
type Status struct {
	Text  string
	Error bool
}

// Context is the editor's central state.
type Context struct {
	windows   []*Window
	buffers   []*buffer.Buffer
	focused   int
	prevFocus int

	modes    *mode.Machine
	register Register
	status   Status
	dirty    map[int]struct{}

	tabWidth   int
	viewHeight int

	// Running is cleared by Quit. The run loop stops once it is false.
	Running bool
}

// Option configures a Context.
type Option func(*Context)

// WithBuffer opens b in a new text window.
func WithBuffer(b *buffer.Buffer) Option {
	return func(c *Context) {
		c.AddWindow(b)
	}
}

// WithRegister sets the clipboard register.
func WithRegister(r Register) Option {
	return func(c *Context) {
		if r != nil {
			c.register = r
		}
	}
}

// WithTabWidth sets the InsertTab width.
func WithTabWidth(n int) Option {
	return func(c *Context) {
		c.SetTabWidth(n)
	}
}

// WithViewHeight sets the height of text windows.
func WithViewHeight(h int) Option {
	return func(c *Context) {
		c.viewHeight = max(h, 1)
	}
}

// New creates a context in Normal mode. Without a WithBuffer option it
// opens one empty buffer. The first text window is focused.
func New(opts ...Option) *Context {
	c := &Context{
		modes:      mode.NewMachine(),
		register:   &MemoryRegister{},
		dirty:      make(map[int]struct{}),
		tabWidth:   DefaultTabWidth,
		viewHeight: 24,
		Running:    true,
	}
	cmdBuf := buffer.New(buffer.WithName(CommandLineName))
	c.windows = []*Window{NewWindow(cmdBuf, 1)}

	for _, opt := range opts {
		opt(c)
	}
	if len(c.windows) == 1 {
		c.AddWindow(buffer.New())
	}
	for _, w := range c.windows[1:] {
		w.SetHeight(c.viewHeight)
	}
	c.focused = 1
	c.prevFocus = 1
	c.MarkDirty(1)
	return c
}

// Mode returns the current mode.
func (c *Context) Mode() mode.Mode {
	return c.modes.Current()
}

// Modes returns the mode state machine.
func (c *Context) Modes() *mode.Machine {
	return c.modes
}

// Register returns the clipboard register.
func (c *Context) Register() Register {
	return c.register
}

// TabWidth returns the InsertTab width.
func (c *Context) TabWidth() int {
	return c.tabWidth
}

// SetTabWidth sets the InsertTab width. Values below 1 are ignored.
func (c *Context) SetTabWidth(n int) {
	if n >= 1 {
		c.tabWidth = n
	}
}

// Windows returns all windows, the command-line window first.
func (c *Context) Windows() []*Window {
	return c.windows
}

// Window returns window i, or nil if there is none.
func (c *Context) Window(i int) *Window {
	if i < 0 || i >= len(c.windows) {
		return nil
	}
	return c.windows[i]
}

// CommandWindow returns the command-line window.
func (c *Context) CommandWindow() *Window {
	return c.windows[CommandLine]
}

// Focused returns the index of the focused window.
func (c *Context) Focused() int {
	return c.focused
}

// FocusedWindow returns the focused window.
func (c *Context) FocusedWindow() *Window {
	return c.windows[c.focused]
}

// PreviousFocus returns the text window focused before the command line.
func (c *Context) PreviousFocus() int {
	return c.prevFocus
}

// DisplayWindow returns the text window being edited: the focused window,
// or the one focused before the command line took focus.
func (c *Context) DisplayWindow() *Window {
	if c.focused == CommandLine {
		return c.windows[c.prevFocus]
	}
	return c.windows[c.focused]
}

// DisplayIndex returns the index of DisplayWindow.
func (c *Context) DisplayIndex() int {
	if c.focused == CommandLine {
		return c.prevFocus
	}
	return c.focused
}

// Focus moves focus to window i. Focusing the command line remembers the
// text window it came from. Both windows are marked dirty.
func (c *Context) Focus(i int) error {
	if i < 0 || i >= len(c.windows) {
		return fmt.Errorf("%w: %d", ErrNoWindow, i)
	}
	if i == CommandLine && c.focused != CommandLine {
		c.prevFocus = c.focused
	}
	c.MarkDirty(c.focused)
	c.focused = i
	c.MarkDirty(i)
	return nil
}

// AddWindow opens b in a new text window and returns its index. The
// buffer is added to the buffer list if it is not already there.
func (c *Context) AddWindow(b *buffer.Buffer) int {
	c.AddBuffer(b)
	c.windows = append(c.windows, NewWindow(b, c.viewHeight))
	i := len(c.windows) - 1
	c.MarkDirty(i)
	return i
}

// TextWindowCount returns the number of windows other than the command
// line.
func (c *Context) TextWindowCount() int {
	return len(c.windows) - 1
}

// NextWindow moves focus to the next text window, wrapping. It does
// nothing while the command line is focused.
func (c *Context) NextWindow() {
	if c.focused == CommandLine {
		return
	}
	next := c.focused + 1
	if next >= len(c.windows) {
		next = 1
	}
	_ = c.Focus(next)
}

// CloseWindow removes text window i and focuses a remaining one. The last
// text window and the command line cannot be closed.
func (c *Context) CloseWindow(i int) error {
	switch {
	case i == CommandLine:
		return ErrCommandWindow
	case i < 0 || i >= len(c.windows):
		return fmt.Errorf("%w: %d", ErrNoWindow, i)
	case c.TextWindowCount() <= 1:
		return ErrLastWindow
	}
	c.windows = append(c.windows[:i], c.windows[i+1:]...)

	fix := func(idx int) int {
		switch {
		case idx > i:
			return idx - 1
		case idx == i:
			return min(i, len(c.windows)-1)
		}
		return idx
	}
	c.focused = fix(c.focused)
	c.prevFocus = fix(c.prevFocus)
	if c.prevFocus == CommandLine {
		c.prevFocus = 1
	}

	// indices shifted; redraw everything
	c.MarkAllDirty()
	return nil
}

// Buffers returns the open buffers in the order they were opened.
func (c *Context) Buffers() []*buffer.Buffer {
	return c.buffers
}

// AddBuffer adds b to the buffer list unless it is already open.
func (c *Context) AddBuffer(b *buffer.Buffer) {
	for _, open := range c.buffers {
		if open.ID() == b.ID() {
			return
		}
	}
	c.buffers = append(c.buffers, b)
}

// FindBuffer returns the open buffer with path, if any.
func (c *Context) FindBuffer(path string) *buffer.Buffer {
	for _, b := range c.buffers {
		if path != "" && b.Path() == path {
			return b
		}
	}
	return nil
}

// CycleBuffer shows the buffer delta places after the display window's
// current one, wrapping.
func (c *Context) CycleBuffer(delta int) {
	w := c.DisplayWindow()
	n := len(c.buffers)
	if n == 0 {
		return
	}
	cur := 0
	for i, b := range c.buffers {
		if b == w.Buffer() {
			cur = i
			break
		}
	}
	next := ((cur+delta)%n + n) % n
	w.SetBuffer(c.buffers[next])
	c.MarkDirty(c.DisplayIndex())
}

// Resize sets the height of every text window.
func (c *Context) Resize(height int) {
	c.viewHeight = max(height, 1)
	for _, w := range c.windows[1:] {
		w.SetHeight(c.viewHeight)
	}
	c.MarkAllDirty()
}

// Status returns the current status message.
func (c *Context) Status() Status {
	return c.status
}

// SetStatus shows an informational message.
func (c *Context) SetStatus(format string, args ...any) {
	c.status = Status{Text: fmt.Sprintf(format, args...)}
}

// SetError shows an error message.
func (c *Context) SetError(err error) {
	c.status = Status{Text: err.Error(), Error: true}
}

// ClearStatus removes the status message.
func (c *Context) ClearStatus() {
	c.status = Status{}
}

// Quit clears the running flag.
func (c *Context) Quit() {
	c.Running = false
}

// MarkDirty records that window i needs redrawing.
func (c *Context) MarkDirty(i int) {
	if i >= 0 && i < len(c.windows) {
		c.dirty[i] = struct{}{}
	}
}

// MarkAllDirty records that every window needs redrawing.
func (c *Context) MarkAllDirty() {
	for i := range c.windows {
		c.dirty[i] = struct{}{}
	}
}

// TakeDirty returns the dirty window indices in ascending order and clears
// the set.
func (c *Context) TakeDirty() []int {
	out := make([]int, 0, len(c.dirty))
	for i := range c.dirty {
		out = append(out, i)
	}
	sort.Ints(out)
	clear(c.dirty)
	return out
}

// Validate checks focus and cursor bounds. Anything found out of bounds
// is clamped and ErrInvariant is returned describing it.
func (c *Context) Validate() error {
	var bad []string
	if c.focused < 0 || c.focused >= len(c.windows) {
		bad = append(bad, fmt.Sprintf("focus %d", c.focused))
		c.focused = 1
	}
	if c.prevFocus < 1 || c.prevFocus >= len(c.windows) {
		bad = append(bad, fmt.Sprintf("previous focus %d", c.prevFocus))
		c.prevFocus = 1
	}
	for i, w := range c.windows {
		if !w.Buffer().Validate(w.Height()) {
			bad = append(bad, fmt.Sprintf("window %d cursor", i))
			c.MarkDirty(i)
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %v", ErrInvariant, bad)
	}
	return nil
}
