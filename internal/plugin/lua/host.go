package lua

import (
	"context"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/dispatcher"
)

// Logger is where script output and diagnostics go.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

// Host runs editor scripts. It implements dispatcher.ScriptHost.
type Host struct {
	state  *State
	logger Logger

	// api is set only while Eval or Invoke runs.
	api *dispatcher.ScriptAPI

	funcs     map[command.Token]*lua.LFunction
	nextToken command.Token
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

type hostConfig struct {
	timeout time.Duration
	logger  Logger
}

// WithTimeout bounds each evaluation.
func WithTimeout(d time.Duration) HostOption {
	return func(c *hostConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger receiving print output.
func WithLogger(l Logger) HostOption {
	return func(c *hostConfig) {
		c.logger = l
	}
}

// NewHost creates a host with a fresh sandboxed state.
func NewHost(opts ...HostOption) *Host {
	cfg := hostConfig{timeout: DefaultExecutionTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}
	h := &Host{
		logger: cfg.logger,
		funcs:  make(map[command.Token]*lua.LFunction),
	}
	h.state = NewState(
		WithExecutionTimeout(cfg.timeout),
		WithPrint(func(line string) {
			if h.logger != nil {
				h.logger.Info("lua: %s", line)
			}
		}),
	)
	h.state.RegisterModule("editor", h.editorFuncs())
	return h
}

// Eval runs src with api as the editor table's target.
func (h *Host) Eval(ctx context.Context, src string, api *dispatcher.ScriptAPI) error {
	defer h.enter(api)()
	return h.state.DoString(ctx, src)
}

// Invoke calls the function bound under tok.
func (h *Host) Invoke(ctx context.Context, tok command.Token, api *dispatcher.ScriptAPI) error {
	fn, ok := h.funcs[tok]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownToken, tok)
	}
	defer h.enter(api)()
	return h.state.CallFunction(ctx, fn)
}

// enter makes api current and returns the function restoring the
// previous one, so nested evaluations unwind correctly.
func (h *Host) enter(api *dispatcher.ScriptAPI) func() {
	prev := h.api
	h.api = api
	return func() {
		h.api = prev
	}
}

// register stores fn and returns its token.
func (h *Host) register(fn *lua.LFunction) command.Token {
	h.nextToken++
	h.funcs[h.nextToken] = fn
	return h.nextToken
}

// Functions returns the number of functions held for key bindings.
func (h *Host) Functions() int {
	return len(h.funcs)
}

// Close releases the Lua state.
func (h *Host) Close() {
	h.state.Close()
	clear(h.funcs)
}
