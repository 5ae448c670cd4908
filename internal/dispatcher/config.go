package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// RecoverFromPanic wraps command execution in panic recovery.
	RecoverFromPanic bool

	// MaxRepeatCount limits the count passed to commands.
	// Zero means no limit.
	MaxRepeatCount int

	// EnableMetrics enables per-command timing and statistics.
	EnableMetrics bool

	// ScriptMarker is the command-line word that sends the rest of the
	// line to the script host.
	ScriptMarker string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
		MaxRepeatCount:   10000,
		ScriptMarker:     "lua",
	}
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}
