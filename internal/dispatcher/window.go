package dispatcher

import (
	"fmt"
	"strings"

	"github.com/dshills/vedit/internal/editor"
)

func (d *Dispatcher) closeWindow() error {
	if d.ed.Focused() == editor.CommandLine {
		return editor.ErrCommandWindow
	}
	return d.ed.CloseWindow(d.ed.Focused())
}

// save writes the buffer being edited, to path when given.
func (d *Dispatcher) save(path string) error {
	b := d.ed.DisplayWindow().Buffer()
	lines, err := b.Save(path)
	if err != nil {
		return err
	}
	if path == "" {
		path = b.Path()
	}
	d.ed.SetStatus("%q %dL written", path, lines)
	d.ed.MarkDirty(d.ed.DisplayIndex())
	return nil
}

// listBuffers shows the open buffers, one entry per buffer:
// number, flags ("%" shown in the edited window, "+" modified) and name.
func (d *Dispatcher) listBuffers() {
	current := d.ed.DisplayWindow().Buffer()
	entries := make([]string, 0, len(d.ed.Buffers()))
	for i, b := range d.ed.Buffers() {
		flags := ""
		if b == current {
			flags += "%"
		}
		if b.Modified() {
			flags += "+"
		}
		entries = append(entries, fmt.Sprintf("%d%s %q", i+1, flags, b.Name()))
	}
	d.ed.SetStatus("%s", strings.Join(entries, "  "))
}
