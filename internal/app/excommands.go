package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/dispatcher"
	"github.com/dshills/vedit/internal/engine/buffer"
)

// ExCommands is the default interpreter for command lines that are not
// scripts. It runs editor commands through the dispatcher, so :w behaves
// exactly like a bound Save.
type ExCommands struct {
	d      *dispatcher.Dispatcher
	logger *Logger

	// OnLineNumbers, if set, is called by :set number and :set nonumber.
	OnLineNumbers func(on bool)
}

// NewExCommands creates an interpreter running commands on d.
func NewExCommands(d *dispatcher.Dispatcher, logger *Logger) *ExCommands {
	if logger == nil {
		logger = NullLogger
	}
	return &ExCommands{d: d, logger: logger}
}

// Run executes one command line without its leading ':'.
func (x *ExCommands) Run(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	if n, err := strconv.Atoi(name); err == nil && arg == "" {
		return x.gotoLine(n)
	}

	switch name {
	case "q", "quit":
		if b := x.modified(); b != nil {
			return fmt.Errorf("%w: %s", ErrUnsavedChanges, b.Name())
		}
		return x.exec(ctx, command.Of(command.Quit))

	case "q!", "quit!":
		return x.exec(ctx, command.Of(command.Quit))

	case "w", "write":
		return x.exec(ctx, command.SaveAs(arg))

	case "wq", "x", "xit":
		// :x only writes when there is something to write.
		if name == "wq" || x.d.Context().DisplayWindow().Buffer().Modified() {
			if err := x.exec(ctx, command.SaveAs(arg)); err != nil {
				return err
			}
		}
		return x.exec(ctx, command.Of(command.Quit))

	case "e", "edit":
		return x.edit(arg)

	case "ls", "buffers", "files":
		return x.exec(ctx, command.Of(command.ListBuffers))

	case "bn", "bnext":
		x.d.Context().CycleBuffer(1)
		return nil

	case "bp", "bprevious", "bN":
		x.d.Context().CycleBuffer(-1)
		return nil

	case "set", "se":
		return x.set(arg)

	case "echo":
		return x.exec(ctx, command.Message(unquote(arg)))
	}
	return &dispatcher.UserInputError{Msg: "not an editor command: " + line}
}

func (x *ExCommands) exec(ctx context.Context, cmd command.Command) error {
	x.logger.Debug("ex: %s", cmd)
	return x.d.Execute(ctx, cmd, 1)
}

// modified returns the first buffer with unsaved changes.
func (x *ExCommands) modified() *buffer.Buffer {
	for _, b := range x.d.Context().Buffers() {
		if b.Modified() {
			return b
		}
	}
	return nil
}

func (x *ExCommands) gotoLine(n int) error {
	ed := x.d.Context()
	b := ed.DisplayWindow().Buffer()
	b.SetCursorRow(max(n, 1) - 1)
	b.FirstCharInLine()
	ed.MarkDirty(ed.DisplayIndex())
	return nil
}

// edit shows the buffer for path in the window being edited, loading it
// unless it is already open.
func (x *ExCommands) edit(path string) error {
	if path == "" {
		return &dispatcher.UserInputError{Msg: "e command takes a file name"}
	}
	ed := x.d.Context()
	b := ed.FindBuffer(path)
	if b == nil {
		var err error
		b, err = buffer.Load(path)
		if err != nil {
			x.logger.Warn("edit %s: %v", path, err)
		}
		ed.AddBuffer(b)
	}
	ed.DisplayWindow().SetBuffer(b)
	ed.MarkDirty(ed.DisplayIndex())
	ed.SetStatus("%q %dL", path, b.LineCount())
	return nil
}

func (x *ExCommands) set(arg string) error {
	ed := x.d.Context()
	name, value, hasValue := strings.Cut(arg, "=")
	switch {
	case (name == "tabwidth" || name == "ts") && hasValue:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 16 {
			return &dispatcher.UserInputError{Msg: "invalid argument: " + arg}
		}
		ed.SetTabWidth(n)
		return nil
	case (name == "tabwidth" || name == "ts") && !hasValue:
		ed.SetStatus("tabwidth=%d", ed.TabWidth())
		return nil
	case (name == "number" || name == "nu" || name == "nonumber" || name == "nonu") && !hasValue:
		if x.OnLineNumbers != nil {
			x.OnLineNumbers(!strings.HasPrefix(name, "no"))
		}
		return nil
	}
	return &dispatcher.UserInputError{Msg: "unknown option: " + arg}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
