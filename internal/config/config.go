package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vedit/internal/config/loader"
	"github.com/dshills/vedit/internal/config/watcher"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "VEDIT_"

// Config loads settings and optionally watches their sources.
type Config struct {
	mu sync.RWMutex

	// Explicit file from --config; overrides the search paths.
	path        string
	searchPaths []string
	envPrefix   string

	settings   Settings
	loadedFrom string
	loaded     bool

	enableWatcher bool
	watcher       *watcher.Watcher
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets an explicit configuration file.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithSearchPaths replaces the default search paths.
func WithSearchPaths(paths ...string) Option {
	return func(c *Config) {
		c.searchPaths = paths
	}
}

// WithEnvPrefix sets the environment prefix. Empty disables env overrides.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithWatcher enables file watching for live reload.
func WithWatcher(enable bool) Option {
	return func(c *Config) {
		c.enableWatcher = enable
	}
}

// New creates a Config holding the defaults until Load is called.
func New(opts ...Option) *Config {
	c := &Config{
		searchPaths: DefaultSearchPaths(),
		envPrefix:   EnvPrefix,
		settings:    Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultSearchPaths returns the candidate config files in priority order.
func DefaultSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "vedit", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".config", "vedit", "config.toml")
		if len(paths) == 0 || paths[0] != p {
			paths = append(paths, p)
		}
	}
	return paths
}

// Load reads, merges, decodes and validates the settings, then starts
// the watcher when enabled.
func (c *Config) Load(_ context.Context) error {
	settings, from, err := c.read()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.settings = settings
	c.loadedFrom = from
	c.loaded = true
	c.mu.Unlock()

	if c.enableWatcher {
		return c.startWatcher()
	}
	return nil
}

// Reload re-reads the sources. On error the previous settings are kept.
func (c *Config) Reload() error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if !loaded {
		return ErrNotLoaded
	}

	settings, from, err := c.read()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.settings = settings
	c.loadedFrom = from
	c.mu.Unlock()

	c.watchSources()
	return nil
}

// Settings returns a snapshot of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.settings
	s.Keymap.Files = slices.Clone(c.settings.Keymap.Files)
	return s
}

// Path returns the file the settings were read from, or "" if none.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedFrom
}

// KeymapFiles returns the keymap files with relative paths resolved
// against the directory of the config file.
func (c *Config) KeymapFiles() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	base := ""
	if c.loadedFrom != "" {
		base = filepath.Dir(c.loadedFrom)
	}
	files := make([]string, 0, len(c.settings.Keymap.Files))
	for _, f := range c.settings.Keymap.Files {
		f = expandHome(f)
		if !filepath.IsAbs(f) && base != "" {
			f = filepath.Join(base, f)
		}
		files = append(files, f)
	}
	return files
}

// ScriptInit returns the init script path resolved like KeymapFiles.
func (c *Config) ScriptInit() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f := expandHome(c.settings.Script.Init)
	if f == "" || filepath.IsAbs(f) || c.loadedFrom == "" {
		return f
	}
	return filepath.Join(filepath.Dir(c.loadedFrom), f)
}

// Changes returns the channel of source file changes, or nil when the
// watcher is disabled.
func (c *Config) Changes() <-chan watcher.Event {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Events()
}

// Close stops the watcher.
func (c *Config) Close() error {
	c.mu.Lock()
	w := c.watcher
	c.watcher = nil
	c.mu.Unlock()
	if w != nil {
		return w.Close()
	}
	return nil
}

// candidate returns the file to read, whether or not it exists.
func (c *Config) candidate() string {
	if c.path != "" {
		return c.path
	}
	for _, p := range c.searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if len(c.searchPaths) > 0 {
		return c.searchPaths[0]
	}
	return ""
}

func (c *Config) read() (Settings, string, error) {
	merged := make(map[string]any)
	from := ""

	if path := c.candidate(); path != "" {
		fileCfg, err := loader.NewTOMLLoader(path).Load()
		if err != nil {
			return Settings{}, "", err
		}
		if fileCfg != nil {
			from = path
			merged = loader.DeepMerge(merged, fileCfg)
		}
	}

	if c.envPrefix != "" {
		envCfg, err := loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return Settings{}, "", err
		}
		merged = loader.DeepMerge(merged, envCfg)
	}

	settings, err := decode(merged)
	if err != nil {
		if from != "" {
			return Settings{}, "", fmt.Errorf("%s: %w", from, err)
		}
		return Settings{}, "", err
	}
	return settings, from, nil
}

// decode overlays a raw map on the defaults.
func decode(raw map[string]any) (Settings, error) {
	settings := Default()
	if len(raw) == 0 {
		return settings, nil
	}

	data, err := toml.Marshal(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("config: encoding merged settings: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) && len(strict.Errors) > 0 {
			return Settings{}, &ValidationError{
				Key:     strings.Join(strict.Errors[0].Key(), "."),
				Message: "unknown setting",
			}
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) && len(derr.Key()) > 0 {
			return Settings{}, &ValidationError{Key: strings.Join(derr.Key(), "."), Message: derr.Error()}
		}
		return Settings{}, &ValidationError{Key: "config", Message: err.Error()}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (c *Config) startWatcher() error {
	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("config: starting watcher: %w", err)
	}
	c.mu.Lock()
	c.watcher = w
	c.mu.Unlock()

	c.watchSources()
	return nil
}

// watchSources adds the config and keymap files to the watcher. Files in
// directories that don't exist are skipped.
func (c *Config) watchSources() {
	c.mu.RLock()
	w := c.watcher
	c.mu.RUnlock()
	if w == nil {
		return
	}

	if path := c.candidate(); path != "" {
		_ = w.Watch(path)
	}
	for _, f := range c.KeymapFiles() {
		_ = w.Watch(f)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
