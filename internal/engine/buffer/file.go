package buffer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Load creates a buffer from the file at path. A missing or unreadable
// file yields an empty buffer bound to path. The buffer is always usable;
// a read failure other than a missing file is returned alongside it so the
// caller can log it.
func Load(path string, opts ...Option) (*Buffer, error) {
	opts = append([]Option{WithPath(path)}, opts...)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(opts...), nil
	}
	if err != nil {
		return New(opts...), fmt.Errorf("read %s: %w", path, err)
	}
	text := string(data)
	b := FromString(text, append(opts, WithLineEnding(DetectLineEnding(text)))...)
	return b, nil
}

// Save writes the full content to path, or to the buffer's own path when
// path is empty. A buffer without a path adopts the one it was saved to.
// It returns the number of lines written.
func (b *Buffer) Save(path string) (int, error) {
	if path == "" {
		path = b.path
	}
	if path == "" {
		return 0, ErrNoPath
	}

	text := b.Text()
	if b.lineEnding == LineEndingCRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	if b.path == "" {
		WithPath(path)(b)
	}
	if path == b.path {
		b.modified = false
	}
	return b.LineCount(), nil
}
