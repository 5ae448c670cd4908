package app

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/config"
	"github.com/dshills/vedit/internal/dispatcher"
	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/chord"
	"github.com/dshills/vedit/internal/input/key"
	"github.com/dshills/vedit/internal/input/keymap"
	"github.com/dshills/vedit/internal/plugin/lua"
	"github.com/dshills/vedit/internal/terminal"
)

// Application owns every component of a running editor. The editor
// state is only touched from the goroutine running Run.
type Application struct {
	opts Options

	config  *config.Config
	logger  *Logger
	logFile *os.File

	ed         *editor.Context
	parser     *chord.Parser
	dispatcher *dispatcher.Dispatcher
	ex         *ExCommands
	scripts    *lua.Host

	backend  terminal.Backend
	renderer *terminal.Renderer

	// startupErr is shown once the screen is up.
	startupErr error

	running   atomic.Bool
	closeOnce sync.Once
}

// Options configures the application.
type Options struct {
	// ConfigPath is an explicit configuration file. Empty searches the
	// default locations.
	ConfigPath string

	// Files are opened on startup, one window each.
	Files []string

	// LogLevel and LogFile override the configuration when set.
	LogLevel string
	LogFile  string

	// Backend replaces the tcell terminal, for tests.
	Backend terminal.Backend

	// SearchPaths replaces the default configuration search paths.
	SearchPaths []string
}

// New creates an Application. Configuration and file errors are not
// fatal: the editor starts with defaults and shows the error.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfgOpts := []config.Option{config.WithPath(app.opts.ConfigPath), config.WithWatcher(true)}
	if app.opts.SearchPaths != nil {
		cfgOpts = append(cfgOpts, config.WithSearchPaths(app.opts.SearchPaths...))
	}
	app.config = config.New(cfgOpts...)
	cfgErr := app.config.Load(context.Background())
	settings := app.config.Settings()

	// 2. Logger
	if err := app.initLogger(settings); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	if cfgErr != nil {
		app.logger.Warn("config: %v", cfgErr)
		app.startupErr = cfgErr
	} else {
		app.logger.Info("config loaded from %s", app.config.Path())
	}

	// 3. Editor state
	edOpts := []editor.Option{editor.WithTabWidth(settings.Editor.TabWidth)}
	if settings.Clipboard.System {
		clipLog := app.logger.WithComponent("clipboard")
		edOpts = append(edOpts, editor.WithRegister(&editor.SystemRegister{
			OnError: func(err error) { clipLog.Warn("%v", err) },
		}))
	}
	for _, path := range app.opts.Files {
		b, err := buffer.Load(path)
		if err != nil {
			app.logger.Warn("open %s: %v", path, err)
			app.startupErr = err
		}
		edOpts = append(edOpts, editor.WithBuffer(b))
	}
	app.ed = editor.New(edOpts...)

	// 4. Script host and dispatcher
	app.scripts = lua.NewHost(
		lua.WithTimeout(settings.ScriptTimeout()),
		lua.WithLogger(app.logger.WithComponent("lua")),
	)
	dcfg := dispatcher.DefaultConfig().WithPanicRecovery(true)
	if settings.Log.Metrics {
		dcfg = dcfg.WithMetrics()
	}
	app.dispatcher = dispatcher.New(app.ed, keymap.NewDefaultTable(),
		dispatcher.WithConfig(dcfg),
		dispatcher.WithLogger(app.logger.WithComponent("dispatcher")),
		dispatcher.WithScriptHost(app.scripts),
	)
	app.ex = NewExCommands(app.dispatcher, app.logger.WithComponent("ex"))
	app.dispatcher.SetExInterpreter(app.ex)
	app.parser = chord.NewParser(app.dispatcher.Table())

	// 5. Frontend
	app.backend = app.opts.Backend
	if app.backend == nil {
		t, err := terminal.NewTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.backend = t
	}
	app.renderer = terminal.NewRenderer(app.backend, terminal.Options{})
	app.ex.OnLineNumbers = func(on bool) {
		opts := app.renderOptions(app.config.Settings())
		opts.LineNumbers = on
		app.renderer.SetOptions(opts)
		app.ed.MarkAllDirty()
	}

	app.applySettings()
	return nil
}

func (app *Application) initLogger(s config.Settings) error {
	level := s.Log.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	path := s.Log.File
	if app.opts.LogFile != "" {
		path = app.opts.LogFile
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	if path != "" {
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		app.logFile = f
		cfg.Output = f
	}
	app.logger = NewLogger(cfg)
	SetLogger(app.logger)
	return nil
}

func (app *Application) renderOptions(s config.Settings) terminal.Options {
	return terminal.Options{
		LineNumbers: s.Editor.LineNumbers,
		StatusBar:   s.Editor.StatusBar,
	}
}

// applySettings pushes the current configuration into the running
// components. Keymap files are applied over the bindings already in the
// table, so bindings made by scripts survive a reload.
func (app *Application) applySettings() {
	s := app.config.Settings()
	app.ed.SetTabWidth(s.Editor.TabWidth)
	app.renderer.SetOptions(app.renderOptions(s))
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(ParseLogLevel(s.Log.Level))
	}

	loader := keymap.NewLoader()
	for _, path := range app.config.KeymapFiles() {
		kms, err := loader.LoadFile(path)
		if err == nil {
			err = keymap.ApplyAll(app.dispatcher.Table(), kms)
		}
		if err != nil {
			app.logger.Warn("keymap: %v", err)
			app.ed.SetError(err)
			continue
		}
		app.logger.Debug("keymap: applied %d keymaps from %s", len(kms), path)
	}
	app.ed.Resize(app.renderer.ViewHeight())
}

// Run initializes the terminal and processes input until the editor
// quits, the terminal goes away or ctx is cancelled. A normal quit
// returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	app.ed.Resize(app.renderer.ViewHeight())

	events := make(chan terminal.Event)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go app.pump(events, done, &wg)
	defer func() {
		close(done)
		app.backend.Shutdown()
		wg.Wait()
	}()

	if app.startupErr != nil {
		app.ed.SetError(app.startupErr)
	}
	app.runInitScript(ctx)
	app.render(true)

	changes := app.config.Changes()

	for {
		if !app.ed.Running {
			app.logger.Info("quit")
			return ErrQuit
		}

		force := false
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev.Type {
			case terminal.EventKey:
				app.handleKey(ctx, ev.Key)
			case terminal.EventResize:
				app.ed.Resize(app.renderer.ViewHeight())
				force = true
			case terminal.EventClosed:
				return ErrTerminalClosed
			}

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.logger.Debug("config: %s %s", ev.Op, ev.Path)
			app.reload()
			force = true
		}

		if app.ed.Running {
			app.render(force)
		}
	}
}

// pump forwards terminal events to the run loop.
func (app *Application) pump(events chan<- terminal.Event, done <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		ev := app.backend.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev.Type == terminal.EventClosed {
			return
		}
	}
}

// handleKey runs one key event through the chord parser and dispatches
// what it resolves to.
func (app *Application) handleKey(ctx context.Context, ev key.Event) {
	if ev.IsInterrupt() {
		app.parser.Reset()
		app.dispatch(ctx, command.Of(command.Quit), 1)
		return
	}

	res := app.parser.Feed(ev, app.ed.Mode())
	for step := &res; step != nil; step = step.Next {
		if !app.apply(ctx, step) {
			break
		}
	}
	app.renderer.SetPending(app.parser.Pending())
}

// apply carries out one resolution step and reports whether the editor
// is still running.
func (app *Application) apply(ctx context.Context, res *chord.Resolution) bool {
	switch res.Outcome {
	case chord.Fire:
		return app.dispatch(ctx, res.Command, res.Count)
	case chord.Literal:
		for _, r := range res.Text {
			if !app.dispatch(ctx, command.Char(r), 1) {
				return false
			}
		}
	case chord.Unmapped:
		app.logger.Debug("unmapped %q in %s mode", res.Text, app.ed.Mode())
	}
	return app.ed.Running
}

// dispatch runs cmd and reports whether the editor is still running.
// Command failures are already on the status line.
func (app *Application) dispatch(ctx context.Context, cmd command.Command, count int) bool {
	if err := app.dispatcher.Dispatch(ctx, cmd, count); errors.Is(err, dispatcher.ErrNotRunning) {
		return false
	}
	return app.ed.Running
}

func (app *Application) runInitScript(ctx context.Context) {
	path := app.config.ScriptInit()
	if path == "" {
		return
	}
	src, err := os.ReadFile(path)
	if err == nil {
		err = app.dispatcher.Eval(ctx, string(src))
	}
	if err != nil {
		app.logger.Warn("init script %s: %v", path, err)
		app.ed.SetError(err)
		return
	}
	app.logger.Info("init script %s evaluated", path)
}

func (app *Application) reload() {
	if err := app.config.Reload(); err != nil {
		app.logger.Warn("config reload: %v", err)
		app.ed.SetError(err)
		return
	}
	app.applySettings()
	app.logger.Info("config reloaded from %s", app.config.Path())
	if s := app.ed.Status(); !s.Error {
		app.ed.SetStatus("config reloaded")
	}
}

func (app *Application) render(force bool) {
	app.renderer.Render(app.ed, app.ed.TakeDirty(), force)
}

// Close releases resources that outlive Run. With metrics enabled the
// dispatch summary is logged first.
func (app *Application) Close() {
	app.closeOnce.Do(app.close)
}

func (app *Application) close() {
	if app.dispatcher != nil && app.logger != nil {
		if m := app.dispatcher.Metrics(); m != nil {
			app.logger.Info("dispatch metrics: %s", m.Summary())
		}
	}
	if app.scripts != nil {
		app.scripts.Close()
	}
	if app.config != nil {
		if err := app.config.Close(); err != nil && app.logger != nil {
			app.logger.Warn("config close: %v", err)
		}
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// Editor returns the editor state. It must not be used while Run is
// active.
func (app *Application) Editor() *editor.Context {
	return app.ed
}

// Dispatcher returns the dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Config returns the configuration.
func (app *Application) Config() *config.Config {
	return app.config
}

// Logger returns the application's logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return GetLogger()
	}
	return app.logger
}
