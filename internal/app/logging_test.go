package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LogLevelDebug},
		{"DEBUG", LogLevelDebug},
		{"info", LogLevelInfo},
		{"Warn", LogLevelWarn},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"unknown", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn %d", 1)
	logger.Error("error")

	out := buf.String()
	for _, absent := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, absent) {
			t.Errorf("%s should be filtered: %s", absent, out)
		}
	}
	for _, present := range []string{"[WARN] test: warn 1", "[ERROR] test: error"} {
		if !strings.Contains(out, present) {
			t.Errorf("missing %q in %s", present, out)
		}
	}

	buf.Reset()
	logger.SetLevel(LogLevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("expected output after SetLevel")
	}
}

func TestLoggerFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &buf})

	logger.WithFields(map[string]any{"zeta": 2, "alpha": "a"}).WithComponent("lua").Info("hello")

	if !strings.Contains(buf.String(), "hello {alpha=a, component=lua, zeta=2}") {
		t.Errorf("fields not rendered in order: %s", buf.String())
	}
}

func TestLoggerDerivedSharesOutput(t *testing.T) {
	var first, second bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: &first})
	child := logger.WithField("k", "v")

	child.Info("one")
	if first.Len() == 0 {
		t.Fatal("child should write to the parent's output")
	}

	logger.SetOutput(&second)
	logger.Info("two")
	if !strings.Contains(second.String(), "two") {
		t.Error("SetOutput did not take effect")
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Debug("test")
	NullLogger.Info("test")
	NullLogger.Warn("test")
	NullLogger.Error("test %v", 1)
}

func TestGetSetLogger(t *testing.T) {
	if GetLogger() != GetLogger() {
		t.Error("GetLogger should return the same instance")
	}

	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	l := NewLogger(DefaultLoggerConfig())
	SetLogger(l)
	if GetLogger() != l {
		t.Error("SetLogger did not replace the logger")
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != LogLevelInfo {
		t.Errorf("level = %v, want INFO", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
	if cfg.Prefix != "vedit" {
		t.Errorf("prefix = %q, want vedit", cfg.Prefix)
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vedit.log")
	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatal(err)
	}
	logger := NewLogger(LoggerConfig{Level: LogLevelInfo, Output: f})
	logger.Info("written")
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written") {
		t.Errorf("log file = %q", data)
	}
}
