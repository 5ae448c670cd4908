package buffer

import "path/filepath"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithName sets the buffer's display name.
func WithName(name string) Option {
	return func(b *Buffer) {
		if name != "" {
			b.name = name
		}
	}
}

// WithPath associates the buffer with a file path. The display name
// defaults to the path's base name.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
		if path != "" && b.name == DefaultName {
			b.name = filepath.Base(path)
		}
	}
}

// WithLineEnding sets the line ending written by Save.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// LineEnding specifies the line ending style used on disk.
// Text held in memory always uses "\n".
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	if le == LineEndingCRLF {
		return "crlf"
	}
	return "lf"
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	if le == LineEndingCRLF {
		return "\r\n"
	}
	return "\n"
}

// DetectLineEnding returns the most common line ending in text.
// Returns LineEndingLF if no line endings are found.
func DetectLineEnding(text string) LineEnding {
	var lf, crlf int
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i > 0 && text[i-1] == '\r' {
			crlf++
		} else {
			lf++
		}
	}
	if crlf > lf {
		return LineEndingCRLF
	}
	return LineEndingLF
}
