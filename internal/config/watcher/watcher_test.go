package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	ev := func(op Operation) Event { return Event{Path: "/c.toml", Op: op} }

	tests := []struct {
		name       string
		prev, next Event
		want       Operation
	}{
		{"first", Event{}, ev(OpWrite), OpWrite},
		{"create then write", ev(OpCreate), ev(OpWrite), OpCreate},
		{"write then remove", ev(OpWrite), ev(OpRemove), OpRemove},
		{"rename then create", ev(OpRename), ev(OpCreate), OpWrite},
		{"write then write", ev(OpWrite), ev(OpWrite), OpWrite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coalesce(tt.prev, tt.next).Op; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWatcher_WatchUnwatch(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "missing.toml")
	if err := w.Watch(a); err != nil {
		t.Fatalf("Watch(a): %v", err)
	}
	if err := w.Watch(b); err != nil {
		t.Fatalf("Watch of a not yet existing file: %v", err)
	}
	if err := w.Watch(a); err != nil {
		t.Fatalf("repeated Watch: %v", err)
	}
	if got := len(w.WatchedFiles()); got != 2 {
		t.Errorf("WatchedFiles = %d, want 2", got)
	}

	if err := w.Unwatch(a); err != nil {
		t.Fatal(err)
	}
	if got := len(w.WatchedFiles()); got != 1 {
		t.Errorf("WatchedFiles = %d, want 1", got)
	}

	if err := w.Watch(filepath.Join(dir, "nodir", "x.toml")); err == nil {
		t.Error("watching inside a missing directory should fail")
	}
}

func TestWatcher_DeliversWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[editor]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	other := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Path != path {
			t.Errorf("Path = %q, want %q", ev.Path, path)
		}
		if ev.Op != OpWrite {
			t.Errorf("Op = %v, want write", ev.Op)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("Events channel should be closed")
	}
	if err := w.Watch(t.TempDir()); err != ErrClosed {
		t.Errorf("got %v, want ErrClosed", err)
	}
}
