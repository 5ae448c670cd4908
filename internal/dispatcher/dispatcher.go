package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/keymap"
)

// Logger is the logging the dispatcher needs.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// ExInterpreter runs ex command lines such as "w" or "q!".
type ExInterpreter interface {
	Run(ctx context.Context, line string) error
}

// ExFunc adapts a function to ExInterpreter.
type ExFunc func(ctx context.Context, line string) error

// Run calls f(ctx, line).
func (f ExFunc) Run(ctx context.Context, line string) error {
	return f(ctx, line)
}

// Dispatcher executes commands against an editor context.
// It is not safe for concurrent use; the run loop owns it.
type Dispatcher struct {
	ed      *editor.Context
	table   *keymap.Table
	ex      ExInterpreter
	scripts ScriptHost
	logger  Logger
	config  Config
	metrics *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithConfig sets the dispatcher configuration.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) {
		d.config = cfg
	}
}

// WithExInterpreter sets the ex command interpreter.
func WithExInterpreter(ex ExInterpreter) Option {
	return func(d *Dispatcher) {
		d.ex = ex
	}
}

// WithScriptHost sets the script host.
func WithScriptHost(h ScriptHost) Option {
	return func(d *Dispatcher) {
		d.scripts = h
	}
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a dispatcher for ed. Scripts register key bindings in
// table.
func New(ed *editor.Context, table *keymap.Table, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		ed:     ed,
		table:  table,
		logger: nopLogger{},
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	d.syncComposing()
	return d
}

// Context returns the editor context.
func (d *Dispatcher) Context() *editor.Context {
	return d.ed
}

// Table returns the key binding table.
func (d *Dispatcher) Table() *keymap.Table {
	return d.table
}

// Metrics returns the collected statistics, or nil if disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// SetExInterpreter replaces the ex command interpreter.
func (d *Dispatcher) SetExInterpreter(ex ExInterpreter) {
	d.ex = ex
}

// Dispatch runs cmd count times or with count as its argument, depending
// on the command. A count below 1 means 1. Failures are shown as the
// status message and returned.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd command.Command, count int) (err error) {
	if !d.ed.Running {
		return ErrNotRunning
	}
	if !cmd.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd)
	}
	count = d.normalizeCount(count)
	start := time.Now()

	d.ed.ClearStatus()
	d.syncComposing()
	if d.config.RecoverFromPanic {
		err = d.executeWithRecovery(ctx, cmd, count)
	} else {
		err = d.execute(ctx, cmd, count)
	}
	d.settle()

	if err != nil {
		d.ed.SetError(err)
		d.logger.Debug("%s x%d: %v", cmd, count, err)
	}
	if d.metrics != nil {
		d.metrics.RecordDispatch(cmd.Kind, time.Since(start), err)
	}
	return err
}

// Execute runs cmd without the bookkeeping Dispatch does around it. It is
// for interpreters that turn a line into commands while a dispatch of
// ExecuteCommandLine is already in progress.
func (d *Dispatcher) Execute(ctx context.Context, cmd command.Command, count int) error {
	if !cmd.Kind.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd)
	}
	return d.execute(ctx, cmd, d.normalizeCount(count))
}

func (d *Dispatcher) normalizeCount(count int) int {
	count = max(count, 1)
	if d.config.MaxRepeatCount > 0 {
		count = min(count, d.config.MaxRepeatCount)
	}
	return count
}

// executeWithRecovery executes a command with panic recovery.
func (d *Dispatcher) executeWithRecovery(ctx context.Context, cmd command.Command, count int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.logger.Error("command panic for %s: %v\n%s", cmd, r, stack[:n])

			err = fmt.Errorf("%w: %s: %v", ErrPanic, cmd, r)
			if d.metrics != nil {
				d.metrics.RecordPanic(cmd.Kind)
			}
		}
	}()
	return d.execute(ctx, cmd, count)
}

func (d *Dispatcher) execute(ctx context.Context, cmd command.Command, count int) error {
	switch cmd.Kind {
	case command.CursorUp, command.CursorDown, command.CursorLeft, command.CursorRight,
		command.ScrollUp, command.ScrollDown, command.Home, command.End,
		command.MoveForwardByWord, command.MoveBackwardByWord,
		command.JumpToFirstLineBuffer, command.JumpToLastLineBuffer,
		command.FirstCharInLine:
		d.motion(cmd.Kind, count)
		return nil

	case command.Backspace:
		d.backspace(count)
	case command.NewLine:
		d.repeat(count, (*buffer.Buffer).NewLine)
	case command.DeleteChar:
		d.repeat(count, (*buffer.Buffer).DeleteChar)
	case command.InsertChar:
		d.insertText(strings.Repeat(string(cmd.Char), count))
	case command.InsertTab:
		d.insertText(strings.Repeat(" ", d.ed.TabWidth()+count))
	case command.DeleteLine:
		return d.deleteLine(count)
	case command.YankLine:
		d.yankLine(count)
	case command.Paste:
		d.paste(count, true)
	case command.PasteBack:
		d.paste(count, false)

	case command.ChangeMode:
		d.changeMode(cmd.Mode)
	case command.EnterCommandMode:
		d.enterCommandMode()
	case command.ExitCommandMode:
		d.exitCommandMode()
	case command.ExecuteCommandLine:
		return d.executeCommandLine(ctx)

	case command.NextWindow:
		d.ed.NextWindow()
	case command.CloseWindow:
		return d.closeWindow()
	case command.Print:
		d.ed.SetStatus("%s", cmd.Text)
	case command.Save:
		return d.save(cmd.Text)
	case command.Quit:
		d.ed.Quit()
	case command.ListBuffers:
		d.listBuffers()

	case command.InvokeScript:
		return d.Invoke(ctx, cmd.Token)

	case command.JumpListBack, command.JumpListForward, command.Undo:
		return fmt.Errorf("%w: %s", ErrNotImplemented, cmd.Kind)
	}
	return nil
}

// syncComposing lets the cursor rest past the line end only in the
// focused buffer of a mode that takes text.
func (d *Dispatcher) syncComposing() {
	literal := d.ed.Mode().LiteralInput()
	focused := d.ed.FocusedWindow().Buffer()
	for _, w := range d.ed.Windows() {
		b := w.Buffer()
		b.SetComposing(literal && b == focused)
	}
}

// settle runs after every command.
func (d *Dispatcher) settle() {
	d.syncComposing()
	d.keepMarker()

	focused := d.ed.Focused()
	d.ed.MarkDirty(focused)
	for _, w := range []*editor.Window{d.ed.FocusedWindow(), d.ed.DisplayWindow()} {
		w.Buffer().Follow(w.Height())
	}
	if err := d.ed.Validate(); err != nil {
		d.logger.Error("%v", err)
	}
}
