package editor

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/mode"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Mode() != mode.Normal {
		t.Errorf("mode = %s, want normal", c.Mode())
	}
	if c.Focused() != 1 || c.TextWindowCount() != 1 {
		t.Errorf("focused %d of %d text windows, want 1 of 1", c.Focused(), c.TextWindowCount())
	}
	if c.CommandWindow().Buffer().Name() != CommandLineName {
		t.Errorf("command buffer = %q", c.CommandWindow().Buffer().Name())
	}
	if !c.Running {
		t.Error("context should start running")
	}
	if c.TabWidth() != DefaultTabWidth {
		t.Errorf("tab width = %d", c.TabWidth())
	}
}

func TestFocusRemembersPrevious(t *testing.T) {
	c := New(WithBuffer(buffer.New()), WithBuffer(buffer.New()))
	if err := c.Focus(2); err != nil {
		t.Fatal(err)
	}
	c.TakeDirty()

	if err := c.Focus(CommandLine); err != nil {
		t.Fatal(err)
	}
	if c.PreviousFocus() != 2 {
		t.Errorf("previous focus = %d, want 2", c.PreviousFocus())
	}
	if c.DisplayIndex() != 2 {
		t.Errorf("display index = %d, want 2", c.DisplayIndex())
	}
	if got := c.TakeDirty(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("dirty = %v, want [0 2]", got)
	}
	if err := c.Focus(9); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Focus(9) err = %v", err)
	}
}

func TestNextWindow(t *testing.T) {
	c := New(WithBuffer(buffer.New()), WithBuffer(buffer.New()), WithBuffer(buffer.New()))

	var seen []int
	for i := 0; i < 4; i++ {
		c.NextWindow()
		seen = append(seen, c.Focused())
	}
	if want := []int{2, 3, 1, 2}; !reflect.DeepEqual(seen, want) {
		t.Errorf("focus order = %v, want %v", seen, want)
	}

	_ = c.Focus(CommandLine)
	c.NextWindow()
	if c.Focused() != CommandLine {
		t.Errorf("NextWindow moved focus off the command line to %d", c.Focused())
	}
}

func TestCloseWindow(t *testing.T) {
	c := New()
	if err := c.CloseWindow(1); !errors.Is(err, ErrLastWindow) {
		t.Errorf("closing last window: err = %v, want ErrLastWindow", err)
	}
	if err := c.CloseWindow(CommandLine); !errors.Is(err, ErrCommandWindow) {
		t.Errorf("closing command line: err = %v", err)
	}
	if c.TextWindowCount() != 1 {
		t.Fatal("window count changed")
	}

	a, b := buffer.FromString("a"), buffer.FromString("b")
	c = New(WithBuffer(a), WithBuffer(b))
	_ = c.Focus(2)
	if err := c.CloseWindow(2); err != nil {
		t.Fatal(err)
	}
	if c.Focused() != 1 || c.FocusedWindow().Buffer() != a {
		t.Errorf("after close focused = %d", c.Focused())
	}
	if len(c.Buffers()) != 2 {
		t.Error("closing a window must not close its buffer")
	}
}

func TestCycleBuffer(t *testing.T) {
	a, b := buffer.FromString("a"), buffer.FromString("b")
	c := New(WithBuffer(a))
	c.AddBuffer(b)
	c.AddBuffer(a)

	c.CycleBuffer(1)
	if c.FocusedWindow().Buffer() != b {
		t.Error("bn should show b")
	}
	c.CycleBuffer(1)
	if c.FocusedWindow().Buffer() != a {
		t.Error("bn should wrap to a")
	}
	c.CycleBuffer(-1)
	if c.FocusedWindow().Buffer() != b {
		t.Error("bp should wrap to b")
	}
}

func TestTakeDirty(t *testing.T) {
	c := New(WithBuffer(buffer.New()), WithBuffer(buffer.New()))
	c.TakeDirty()
	c.MarkDirty(2)
	c.MarkDirty(0)
	c.MarkDirty(2)
	c.MarkDirty(7)

	if got := c.TakeDirty(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("dirty = %v, want [0 2]", got)
	}
	if got := c.TakeDirty(); len(got) != 0 {
		t.Errorf("second take = %v, want empty", got)
	}
}

func TestStatus(t *testing.T) {
	c := New()
	c.SetStatus("%d lines", 3)
	if s := c.Status(); s.Text != "3 lines" || s.Error {
		t.Errorf("status = %+v", s)
	}
	c.SetError(ErrLastWindow)
	if s := c.Status(); s.Text != "cannot close last window" || !s.Error {
		t.Errorf("status = %+v", s)
	}
	c.ClearStatus()
	if c.Status() != (Status{}) {
		t.Error("status not cleared")
	}
}

func TestValidateClamps(t *testing.T) {
	c := New(WithBuffer(buffer.FromString("abc\nde")))
	if err := c.Validate(); err != nil {
		t.Fatalf("fresh context invalid: %v", err)
	}

	c.focused = 5
	c.prevFocus = 0
	err := c.Validate()
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("err = %v, want ErrInvariant", err)
	}
	if c.Focused() != 1 || c.PreviousFocus() != 1 {
		t.Errorf("not clamped: focus %d, previous %d", c.Focused(), c.PreviousFocus())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("second Validate = %v, want nil", err)
	}
}

func TestRegisters(t *testing.T) {
	var r Register = &MemoryRegister{}
	if _, ok := r.Get(); ok {
		t.Error("new register reports set")
	}
	r.Set("line")
	if text, ok := r.Get(); text != "line" || !ok {
		t.Errorf("Get = %q, %v", text, ok)
	}
	r.Set("")
	if text, ok := r.Get(); text != "" || !ok {
		t.Errorf("Get after empty Set = %q, %v", text, ok)
	}
}
