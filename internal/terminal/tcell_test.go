package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vedit/internal/input/key"
)

func TestConvertKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), key.NewRuneEvent('x', key.ModNone)},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), key.NewRuneEvent('X', key.ModNone)},
		{"control code", tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), key.NewRuneEvent('w', key.ModCtrl)},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModCtrl), key.NewRuneEvent('s', key.ModCtrl)},
		{"ctrl-i is tab", tcell.NewEventKey(tcell.KeyCtrlI, 0, tcell.ModCtrl), key.NewSpecialEvent(key.KeyTab, key.ModNone)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEnter, key.ModNone)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyEscape, key.ModNone)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyBackspace, key.ModNone)},
		{"shift arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.NewSpecialEvent(key.KeyUp, key.ModShift)},
		{"function key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.NewSpecialEvent(key.KeyF5, key.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ConvertKey(tt.ev)
			if !ok {
				t.Fatal("not converted")
			}
			if got != tt.want {
				t.Errorf("got %v (%+v), want %v (%+v)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConvertKeyCtrlC(t *testing.T) {
	got, ok := ConvertKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ok || !got.IsInterrupt() {
		t.Errorf("Ctrl-C converted to %v, want an interrupt", got)
	}
}

func TestConvertKeyUnknown(t *testing.T) {
	if _, ok := ConvertKey(tcell.NewEventKey(tcell.KeyF20, 0, tcell.ModNone)); ok {
		t.Error("unsupported key should not convert")
	}
}

func TestConvertToTcellRoundTrip(t *testing.T) {
	events := []key.Event{
		key.NewRuneEvent('a', key.ModNone),
		key.NewRuneEvent('w', key.ModCtrl),
		key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		key.NewSpecialEvent(key.KeyLeft, key.ModNone),
		key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
	}
	for _, ev := range events {
		k, r, m := convertToTcell(ev)
		got, ok := ConvertKey(tcell.NewEventKey(k, r, m))
		if !ok || got != ev {
			t.Errorf("%v round-tripped to %v", ev, got)
		}
	}
}

func TestTerminalSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer term.Shutdown()

	term.SetContent(0, 0, 'v', tcell.StyleDefault)
	term.Show()
	if r, _, _, _ := screen.GetContent(0, 0); r != 'v' {
		t.Errorf("cell (0,0) = %q, want 'v'", r)
	}

	term.PostEvent(KeyEvent(key.NewRuneEvent('q', key.ModNone)))
	ev := term.PollEvent()
	for ev.Type == EventResize {
		ev = term.PollEvent()
	}
	if ev.Type != EventKey || ev.Key != key.NewRuneEvent('q', key.ModNone) {
		t.Errorf("polled %+v", ev)
	}
}
