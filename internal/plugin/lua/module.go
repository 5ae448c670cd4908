package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/dispatcher"
	"github.com/dshills/vedit/internal/input/mode"
)

func (h *Host) editorFuncs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"cursor_up":      h.move((*dispatcher.ScriptAPI).CursorUp),
		"cursor_down":    h.move((*dispatcher.ScriptAPI).CursorDown),
		"cursor_left":    h.move((*dispatcher.ScriptAPI).CursorLeft),
		"cursor_right":   h.move((*dispatcher.ScriptAPI).CursorRight),
		"set_cursor_row": h.set((*dispatcher.ScriptAPI).SetCursorRow),
		"set_cursor_col": h.set((*dispatcher.ScriptAPI).SetCursorCol),
		"set_scroll_row": h.set((*dispatcher.ScriptAPI).SetScrollRow),
		"map":            h.mapKeys,
	}
}

// current returns the live API or raises a Lua error.
func (h *Host) current(L *lua.LState) *dispatcher.ScriptAPI {
	if !h.api.Live() {
		L.RaiseError("%v", ErrNotEvaluating)
		return nil
	}
	return h.api
}

// move wraps a relative motion: fn(n), n defaulting to 1.
func (h *Host) move(fn func(*dispatcher.ScriptAPI, int) error) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.OptInt(1, 1)
		api := h.current(L)
		if err := fn(api, n); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}
}

// set wraps an absolute position setter: fn(value).
func (h *Host) set(fn func(*dispatcher.ScriptAPI, int) error) lua.LGFunction {
	return func(L *lua.LState) int {
		v := L.CheckInt(1)
		api := h.current(L)
		if err := fn(api, v); err != nil {
			L.RaiseError("%v", err)
		}
		return 0
	}
}

// map(mode, keys, fn) or map(mode, keys, command_name [, arg])
func (h *Host) mapKeys(L *lua.LState) int {
	m, err := mode.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}
	keys := L.CheckString(2)
	if keys == "" {
		L.ArgError(2, "keys cannot be empty")
		return 0
	}
	api := h.current(L)

	var cmd command.Command
	switch target := L.Get(3).(type) {
	case *lua.LFunction:
		cmd = command.Script(h.register(target))
	case lua.LString:
		cmd, err = command.Parse(string(target), L.OptString(4, ""))
		if err != nil {
			L.ArgError(3, err.Error())
			return 0
		}
	default:
		L.TypeError(3, lua.LTFunction)
		return 0
	}

	if err := api.Bind(m, keys, cmd); err != nil {
		L.RaiseError("map %q: %v", keys, err)
	}
	return 0
}
