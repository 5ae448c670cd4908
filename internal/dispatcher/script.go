package dispatcher

import (
	"context"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/input/mode"
)

// ScriptHost evaluates scripts. Both calls receive an API valid only until
// they return.
type ScriptHost interface {
	// Eval runs source text.
	Eval(ctx context.Context, src string, api *ScriptAPI) error

	// Invoke runs the function behind a token the host issued.
	Invoke(ctx context.Context, tok command.Token, api *ScriptAPI) error
}

// Eval runs src in the script host. Failures are wrapped in a
// ScriptError.
func (d *Dispatcher) Eval(ctx context.Context, src string) error {
	if d.scripts == nil {
		return ErrNoScriptHost
	}
	api := d.newScriptAPI()
	defer api.revoke()
	if err := d.scripts.Eval(ctx, src, api); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// Invoke runs the script function behind tok.
func (d *Dispatcher) Invoke(ctx context.Context, tok command.Token) error {
	if d.scripts == nil {
		return ErrNoScriptHost
	}
	api := d.newScriptAPI()
	defer api.revoke()
	if err := d.scripts.Invoke(ctx, tok, api); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// ScriptAPI is everything a script may do to the editor: move the cursor
// of the window being edited, set its row, column and scroll row, and
// bind keys. Rows and columns are 0-based and clamped.
type ScriptAPI struct {
	d    *Dispatcher
	live bool
}

func (d *Dispatcher) newScriptAPI() *ScriptAPI {
	return &ScriptAPI{d: d, live: true}
}

func (a *ScriptAPI) revoke() {
	a.live = false
}

// Live reports whether the API may still be used.
func (a *ScriptAPI) Live() bool {
	return a != nil && a.live
}

func (a *ScriptAPI) window() (*editor.Window, error) {
	if !a.Live() {
		return nil, ErrExpired
	}
	return a.d.ed.DisplayWindow(), nil
}

func (a *ScriptAPI) cursor(move func(w *editor.Window)) error {
	w, err := a.window()
	if err != nil {
		return err
	}
	move(w)
	w.Buffer().Follow(w.Height())
	a.d.ed.MarkDirty(a.d.ed.DisplayIndex())
	return nil
}

// CursorUp moves the cursor up n lines.
func (a *ScriptAPI) CursorUp(n int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().MoveUp(n) })
}

// CursorDown moves the cursor down n lines.
func (a *ScriptAPI) CursorDown(n int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().MoveDown(n) })
}

// CursorLeft moves the cursor left n characters.
func (a *ScriptAPI) CursorLeft(n int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().MoveLeft(n) })
}

// CursorRight moves the cursor right n characters.
func (a *ScriptAPI) CursorRight(n int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().MoveRight(n) })
}

// SetCursorRow moves the cursor to row.
func (a *ScriptAPI) SetCursorRow(row int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().SetCursorRow(row) })
}

// SetCursorCol moves the cursor to col on its line.
func (a *ScriptAPI) SetCursorCol(col int) error {
	return a.cursor(func(w *editor.Window) { w.Buffer().SetCursorCol(col) })
}

// SetScrollRow sets the first visible line.
func (a *ScriptAPI) SetScrollRow(row int) error {
	w, err := a.window()
	if err != nil {
		return err
	}
	w.Buffer().SetScrollRow(row, w.Height())
	a.d.ed.MarkDirty(a.d.ed.DisplayIndex())
	return nil
}

// Bind binds keys to cmd in mode m.
func (a *ScriptAPI) Bind(m mode.Mode, keys string, cmd command.Command) error {
	if !a.Live() {
		return ErrExpired
	}
	if err := a.d.table.BindKeys(m, keys, cmd); err != nil {
		return err
	}
	a.d.logger.Debug("script bound %s %q to %s", m, keys, cmd)
	return nil
}
