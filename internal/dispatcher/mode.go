package dispatcher

import (
	"context"
	"strings"

	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/input/mode"
)

// commandMarker starts every command line.
const commandMarker = ":"

// changeMode transitions to target. Entering or leaving command-line mode
// moves focus as EnterCommandMode and ExitCommandMode do. Illegal
// transitions are ignored.
func (d *Dispatcher) changeMode(target mode.Mode) {
	cur := d.ed.Mode()
	switch {
	case cur == target:
		return
	case cur == mode.CommandLine && target == mode.Normal:
		d.exitCommandMode()
		return
	case target == mode.CommandLine:
		d.enterCommandMode()
		return
	}
	if err := d.ed.Modes().Transition(target); err != nil {
		d.logger.Warn("ignoring mode change: %v", err)
	}
}

// enterCommandMode focuses the command line and starts a fresh line.
func (d *Dispatcher) enterCommandMode() {
	cur := d.ed.Mode()
	if cur == mode.CommandLine {
		return
	}
	if !mode.CanTransition(cur, mode.CommandLine) {
		d.logger.Warn("ignoring command mode from %s", cur)
		return
	}
	if err := d.ed.Focus(editor.CommandLine); err != nil {
		d.logger.Error("focus command line: %v", err)
		return
	}
	_ = d.ed.Modes().Transition(mode.CommandLine)
	d.syncComposing()
	d.resetCommandLine()
}

// exitCommandMode returns focus to the window that had it. It does
// nothing unless the command line is focused.
func (d *Dispatcher) exitCommandMode() {
	if d.ed.Focused() != editor.CommandLine {
		return
	}
	if err := d.ed.Focus(d.ed.PreviousFocus()); err != nil {
		d.logger.Error("restore focus: %v", err)
		return
	}
	_ = d.ed.Modes().Transition(mode.Normal)
	d.ed.CommandWindow().Buffer().Reset("")
	d.ed.MarkDirty(editor.CommandLine)
}

func (d *Dispatcher) resetCommandLine() {
	b := d.ed.CommandWindow().Buffer()
	b.Reset(commandMarker)
	b.SetCursorCol(len(commandMarker))
	d.ed.MarkDirty(editor.CommandLine)
}

// keepMarker stops the command-line cursor from moving onto the marker.
func (d *Dispatcher) keepMarker() {
	if d.ed.Focused() != editor.CommandLine {
		return
	}
	b := d.ed.CommandWindow().Buffer()
	if c := b.Cursor(); c.Row == 0 && c.Col < len(commandMarker) && strings.HasPrefix(b.LineText(0), commandMarker) {
		b.SetCursorCol(len(commandMarker))
	}
}

// executeCommandLine runs the command line's current line. The line is
// sent to the script host when it starts with the script marker and to
// the ex interpreter otherwise. The line is reset afterwards; the mode
// stays command-line.
func (d *Dispatcher) executeCommandLine(ctx context.Context) error {
	if d.ed.Focused() != editor.CommandLine {
		return nil
	}
	b := d.ed.CommandWindow().Buffer()
	line := b.LineText(b.Cursor().Row)
	defer func() {
		if d.ed.Focused() == editor.CommandLine {
			d.resetCommandLine()
		}
	}()

	rest := []rune(line)
	if len(rest) == 0 {
		return nil
	}
	body := string(rest[1:])
	if strings.TrimSpace(body) == "" {
		return nil
	}

	marker := d.config.ScriptMarker
	trimmed := strings.TrimSpace(body)
	switch {
	case marker != "" && trimmed == marker:
		return &UserInputError{Msg: marker + " command takes an argument expr"}
	case marker != "" && strings.HasPrefix(trimmed, marker+" "):
		return d.Eval(ctx, strings.TrimSpace(trimmed[len(marker):]))
	}
	return d.runCommandLine(ctx, body)
}

// RunCommandLine hands line to the ex interpreter. Without one every line
// is reported as unknown. A failure is shown as the status message and
// returned.
func (d *Dispatcher) RunCommandLine(ctx context.Context, line string) error {
	err := d.runCommandLine(ctx, line)
	if err != nil {
		d.ed.SetError(err)
	}
	return err
}

// runCommandLine is RunCommandLine without the status update, for callers
// inside Dispatch, which reports the failure itself.
func (d *Dispatcher) runCommandLine(ctx context.Context, line string) error {
	if d.ex == nil {
		return &UserInputError{Msg: "not an editor command: " + strings.TrimSpace(line)}
	}
	d.logger.Debug("ex: %q", line)
	return d.ex.Run(ctx, line)
}
