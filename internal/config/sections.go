package config

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the typed, validated configuration.
type Settings struct {
	Editor    EditorConfig    `toml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Script    ScriptConfig    `toml:"script"`
	Keymap    KeymapConfig    `toml:"keymap"`
	Log       LoggingConfig   `toml:"log"`
}

// EditorConfig holds editing and display settings.
type EditorConfig struct {
	// TabWidth is the number of spaces InsertTab adds before its count.
	TabWidth int `toml:"tab_width"`

	// LineNumbers shows a line number gutter.
	LineNumbers bool `toml:"line_numbers"`

	// StatusBar shows the status line above the command line.
	StatusBar bool `toml:"status_bar"`

	// ScrollOff is reserved for keeping context rows visible. 0 disables.
	ScrollOff int `toml:"scroll_off"`
}

// ClipboardConfig controls the yank register.
type ClipboardConfig struct {
	// System mirrors the register to the OS clipboard.
	System bool `toml:"system"`
}

// ScriptConfig controls the Lua host.
type ScriptConfig struct {
	// Init is a Lua file evaluated at start-up. Empty disables.
	Init string `toml:"init"`

	// Timeout bounds a single evaluation, as a Go duration string.
	Timeout string `toml:"timeout"`
}

// KeymapConfig lists user keymap files.
type KeymapConfig struct {
	// Files are YAML keymap files applied after the defaults, in order.
	Files []string `toml:"files"`
}

// LoggingConfig controls the log sink.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives log output. Empty discards it.
	File string `toml:"file"`

	// Metrics collects per-command dispatch statistics and logs a
	// summary on exit.
	Metrics bool `toml:"metrics"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Editor: EditorConfig{
			TabWidth:    4,
			LineNumbers: true,
			StatusBar:   true,
		},
		Script: ScriptConfig{
			Timeout: "2s",
		},
		Keymap: KeymapConfig{
			Files: []string{},
		},
		Log: LoggingConfig{
			Level: "info",
		},
	}
}

// ScriptTimeout returns the parsed script timeout.
func (s Settings) ScriptTimeout() time.Duration {
	d, err := time.ParseDuration(s.Script.Timeout)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if s.Editor.TabWidth < 1 || s.Editor.TabWidth > 16 {
		return &ValidationError{Key: "editor.tab_width", Message: fmt.Sprintf("must be between 1 and 16, got %d", s.Editor.TabWidth)}
	}
	if s.Editor.ScrollOff < 0 {
		return &ValidationError{Key: "editor.scroll_off", Message: "must not be negative"}
	}
	if s.Script.Timeout != "" {
		d, err := time.ParseDuration(s.Script.Timeout)
		if err != nil {
			return &ValidationError{Key: "script.timeout", Message: err.Error()}
		}
		if d <= 0 {
			return &ValidationError{Key: "script.timeout", Message: "must be positive"}
		}
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Key: "log.level", Message: fmt.Sprintf("unknown level %q", s.Log.Level)}
	}
	for i, f := range s.Keymap.Files {
		if strings.TrimSpace(f) == "" {
			return &ValidationError{Key: fmt.Sprintf("keymap.files[%d]", i), Message: "empty path"}
		}
	}
	return nil
}
