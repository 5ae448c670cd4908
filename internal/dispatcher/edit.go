package dispatcher

import (
	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/engine/buffer"
)

// motion moves the focused window's cursor or viewport.
func (d *Dispatcher) motion(kind command.Kind, count int) {
	w := d.ed.FocusedWindow()
	b := w.Buffer()
	switch kind {
	case command.CursorUp:
		b.MoveUp(count)
	case command.CursorDown:
		b.MoveDown(count)
	case command.CursorLeft:
		b.MoveLeft(count)
	case command.CursorRight:
		b.MoveRight(count)
	case command.ScrollUp:
		b.ScrollUp(count, w.Height())
	case command.ScrollDown:
		b.ScrollDown(count, w.Height())
	case command.Home:
		b.Home()
	case command.End:
		b.End()
	case command.MoveForwardByWord:
		b.MoveForwardByWord()
	case command.MoveBackwardByWord:
		b.MoveBackwardByWord()
	case command.JumpToFirstLineBuffer:
		b.JumpFirstLine()
	case command.JumpToLastLineBuffer:
		b.JumpLastLine()
	case command.FirstCharInLine:
		b.FirstCharInLine()
	}
}

func (d *Dispatcher) repeat(count int, edit func(*buffer.Buffer)) {
	b := d.ed.FocusedWindow().Buffer()
	for i := 0; i < count; i++ {
		edit(b)
	}
}

func (d *Dispatcher) insertText(text string) {
	d.ed.FocusedWindow().Buffer().InsertText(text)
}

// backspace deletes before the cursor. On the command line, backspacing
// over an empty line leaves command-line mode.
func (d *Dispatcher) backspace(count int) {
	if d.ed.Focused() == editor.CommandLine {
		b := d.ed.CommandWindow().Buffer()
		for i := 0; i < count; i++ {
			if b.Text() == commandMarker {
				d.exitCommandMode()
				return
			}
			if b.Cursor().Col <= len(commandMarker) && b.Cursor().Row == 0 {
				return
			}
			b.Backspace()
		}
		return
	}
	d.repeat(count, (*buffer.Buffer).Backspace)
}

// deleteLine removes count lines into the register.
func (d *Dispatcher) deleteLine(count int) error {
	b := d.ed.FocusedWindow().Buffer()
	removed, err := b.DeleteLines(b.Cursor().Row, count)
	if err != nil {
		return err
	}
	d.ed.Register().Set(removed)
	return nil
}

// yankLine copies count lines into the register.
func (d *Dispatcher) yankLine(count int) {
	b := d.ed.FocusedWindow().Buffer()
	d.ed.Register().Set(b.Lines(b.Cursor().Row, count))
}

// paste inserts the register below the cursor line count times. With
// follow the cursor moves onto the first inserted line.
func (d *Dispatcher) paste(count int, follow bool) {
	text, ok := d.ed.Register().Get()
	if !ok {
		return
	}
	b := d.ed.FocusedWindow().Buffer()
	row := b.Cursor().Row
	for i := 0; i < count; i++ {
		if err := b.InsertLine(row+1, text); err != nil {
			d.logger.Error("paste at %d: %v", row+1, err)
			return
		}
	}
	if follow {
		b.MoveDown(1)
	}
}
