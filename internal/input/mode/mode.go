package mode

import (
	"fmt"
	"strings"
)

// Mode is one of the editor's modes.
type Mode uint8

const (
	Normal Mode = iota
	Insert
	CommandLine
	Visual
)

var modeNames = [...]string{
	Normal:      "normal",
	Insert:      "insert",
	CommandLine: "command",
	Visual:      "visual",
}

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, CommandLine, Visual}
}

// String returns the mode's identifier, e.g. "normal".
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// DisplayName returns the status line label.
func (m Mode) DisplayName() string {
	switch m {
	case Normal:
		return "NORMAL"
	case Insert:
		return "-- INSERT --"
	case CommandLine:
		return "COMMAND"
	case Visual:
		return "-- VISUAL --"
	}
	return m.String()
}

// AcceptsCount reports whether digit keys form a numeric prefix in this
// mode.
func (m Mode) AcceptsCount() bool {
	return m == Normal || m == Visual
}

// LiteralInput reports whether unmapped keys are inserted as text.
func (m Mode) LiteralInput() bool {
	return m == Insert || m == CommandLine
}

// CursorStyle returns the cursor shape for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert, CommandLine:
		return CursorBar
	case Visual:
		return CursorUnderline
	}
	return CursorBlock
}

// Parse parses a mode name. Single letter abbreviations (n, i, c, v) are
// accepted.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "n":
		return Normal, nil
	case "insert", "i":
		return Insert, nil
	case "command", "cmdline", "commandline", "c":
		return CommandLine, nil
	case "visual", "v":
		return Visual, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// CursorStyle is the cursor shape a frontend should draw.
type CursorStyle uint8

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
)
