package editor

import (
	"reflect"
	"testing"

	"github.com/dshills/vedit/internal/engine/buffer"
)

func TestOnScreen(t *testing.T) {
	b := buffer.FromString("one\ntwo\nthree\nfour\nfive")
	w := NewWindow(b, 2)

	if got := w.OnScreen(2); !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("OnScreen = %q", got)
	}

	b.MoveDown(3)
	b.Follow(2)
	if got := w.OnScreen(2); !reflect.DeepEqual(got, []string{"three", "four"}) {
		t.Errorf("after follow OnScreen = %q", got)
	}
	if got := w.OnScreen(10); len(got) != 3 {
		t.Errorf("tall viewport got %d lines, want 3", len(got))
	}
	if got := w.OnScreen(0); len(got) != 0 {
		t.Errorf("zero viewport got %q", got)
	}
}

func TestCursorScreenPos(t *testing.T) {
	tests := []struct {
		text    string
		row     int
		col     int
		wantCol int
		wantRow int
	}{
		{"abc", 0, 2, 2, 0},
		{"日本語", 0, 2, 4, 0},
		{"a\nxy", 1, 1, 1, 1},
	}
	for _, tt := range tests {
		b := buffer.FromString(tt.text)
		b.SetCursorRow(tt.row)
		b.SetCursorCol(tt.col)
		w := NewWindow(b, 10)
		col, row := w.CursorScreenPos()
		if col != tt.wantCol || row != tt.wantRow {
			t.Errorf("%q at (%d,%d): got (%d,%d), want (%d,%d)",
				tt.text, tt.row, tt.col, col, row, tt.wantCol, tt.wantRow)
		}
	}
}

func TestSetHeightFollows(t *testing.T) {
	b := buffer.FromString("1\n2\n3\n4\n5\n6")
	w := NewWindow(b, 6)
	b.JumpLastLine()
	w.SetHeight(2)
	if _, row := w.CursorScreenPos(); row != 1 {
		t.Errorf("cursor screen row = %d, want 1", row)
	}
}
