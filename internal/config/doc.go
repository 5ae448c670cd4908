// Package config loads vedit's settings.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment (VEDIT_*)   │  ← Highest priority
//	├─────────────────────────────┤
//	│  2. config.toml             │
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The file is the one named with --config, or else the first of
// $XDG_CONFIG_HOME/vedit/config.toml and ~/.config/vedit/config.toml that
// exists. A missing file is not an error.
//
// # Sub-packages
//
//   - loader: TOML and environment loaders returning raw maps
//   - watcher: fsnotify based change notification for live reload
//
// # Basic Usage
//
//	cfg := config.New(config.WithPath(flagPath), config.WithWatcher(true))
//	if err := cfg.Load(ctx); err != nil {
//		return err
//	}
//	defer cfg.Close()
//	tab := cfg.Settings().Editor.TabWidth
package config
