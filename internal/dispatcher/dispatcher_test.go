package dispatcher

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/editor"
	"github.com/dshills/vedit/internal/engine/buffer"
	"github.com/dshills/vedit/internal/input/key"
	"github.com/dshills/vedit/internal/input/keymap"
	"github.com/dshills/vedit/internal/input/mode"
)

type fakeHost struct {
	evals   []string
	invokes []command.Token
	fn      func(api *ScriptAPI) error
	kept    *ScriptAPI
}

func (h *fakeHost) Eval(_ context.Context, src string, api *ScriptAPI) error {
	h.evals = append(h.evals, src)
	h.kept = api
	if h.fn != nil {
		return h.fn(api)
	}
	return nil
}

func (h *fakeHost) Invoke(_ context.Context, tok command.Token, api *ScriptAPI) error {
	h.invokes = append(h.invokes, tok)
	h.kept = api
	if h.fn != nil {
		return h.fn(api)
	}
	return nil
}

type recordingEx struct {
	lines []string
}

func (r *recordingEx) Run(_ context.Context, line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func newTestDispatcher(text string, opts ...Option) (*Dispatcher, *editor.Context) {
	ed := editor.New(editor.WithBuffer(buffer.FromString(text)), editor.WithViewHeight(10))
	return New(ed, keymap.NewDefaultTable(), opts...), ed
}

func dispatch(t *testing.T, d *Dispatcher, cmd command.Command, count int) error {
	t.Helper()
	return d.Dispatch(context.Background(), cmd, count)
}

func mustDispatch(t *testing.T, d *Dispatcher, cmds ...command.Command) {
	t.Helper()
	for _, cmd := range cmds {
		if err := d.Dispatch(context.Background(), cmd, 1); err != nil {
			t.Fatalf("Dispatch(%s): %v", cmd, err)
		}
	}
}

func cursorOf(ed *editor.Context) buffer.Cursor {
	return ed.DisplayWindow().Buffer().Cursor()
}

func typeLine(t *testing.T, d *Dispatcher, s string) {
	t.Helper()
	for _, r := range s {
		mustDispatch(t, d, command.Char(r))
	}
}

func TestCursorDownClampsKeepsSticky(t *testing.T) {
	d, ed := newTestDispatcher("abc\nde")
	ed.FocusedWindow().Buffer().SetCursorCol(2)

	mustDispatch(t, d, command.Of(command.CursorDown))

	c := cursorOf(ed)
	if c.Row != 1 || c.Col != 1 || c.StickyCol != 2 {
		t.Errorf("cursor = %+v, want (1,1) sticky 2", c)
	}
}

func TestInsertCharScenario(t *testing.T) {
	for _, m := range []mode.Mode{mode.Normal, mode.Insert} {
		t.Run(m.String(), func(t *testing.T) {
			d, ed := newTestDispatcher("")
			mustDispatch(t, d, command.To(m), command.Char('x'), command.Char('y'))

			b := ed.FocusedWindow().Buffer()
			if b.LineText(0) != "xy" || b.Cursor().Col != 2 {
				t.Errorf("line %q col %d, want \"xy\" col 2", b.LineText(0), b.Cursor().Col)
			}
		})
	}
}

func TestCountedCommands(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		cmd     command.Command
		count   int
		want    string
		wantRow int
		wantCol int
	}{
		{"down", "a\nb\nc\nd", command.Of(command.CursorDown), 2, "a\nb\nc\nd", 2, 0},
		{"down past end", "a\nb", command.Of(command.CursorDown), 9, "a\nb", 1, 0},
		{"right", "abcdef", command.Of(command.CursorRight), 3, "abcdef", 0, 3},
		{"delete char", "abcdef", command.Of(command.DeleteChar), 2, "cdef", 0, 0},
		{"insert char", "", command.Char('z'), 3, "zzz", 0, 3},
		{"newline", "ab", command.Of(command.NewLine), 2, "\n\nab", 2, 0},
		{"last line", "a\nb\nc", command.Of(command.JumpToLastLineBuffer), 1, "a\nb\nc", 2, 0},
		{"zero count", "a\nb", command.Of(command.CursorDown), 0, "a\nb", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ed := newTestDispatcher(tt.text)
			if err := dispatch(t, d, tt.cmd, tt.count); err != nil {
				t.Fatal(err)
			}
			b := ed.FocusedWindow().Buffer()
			if b.Text() != tt.want {
				t.Errorf("text = %q, want %q", b.Text(), tt.want)
			}
			if c := b.Cursor(); c.Row != tt.wantRow || c.Col != tt.wantCol {
				t.Errorf("cursor = %v, want (%d, %d)", c, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestInsertTab(t *testing.T) {
	d, ed := newTestDispatcher("")
	ed.SetTabWidth(4)
	mustDispatch(t, d, command.To(mode.Insert), command.Of(command.InsertTab))
	if got := ed.FocusedWindow().Buffer().LineText(0); got != strings.Repeat(" ", 5) {
		t.Errorf("line = %q, want tab width + count spaces", got)
	}
}

func TestDeleteLinePasteRoundTrip(t *testing.T) {
	d, ed := newTestDispatcher("one\ntwo\nthree")
	b := ed.FocusedWindow().Buffer()
	b.SetCursorRow(1)

	mustDispatch(t, d, command.Of(command.DeleteLine))
	if b.Text() != "one\nthree" {
		t.Fatalf("after delete = %q", b.Text())
	}
	if text, _ := ed.Register().Get(); text != "two" {
		t.Fatalf("register = %q", text)
	}

	mustDispatch(t, d, command.Of(command.Paste))
	if b.LineText(2) != "two" {
		t.Errorf("pasted line = %q, want %q", b.LineText(2), "two")
	}
	if b.Cursor().Row != 2 {
		t.Errorf("Paste cursor row = %d, want 2", b.Cursor().Row)
	}

	mustDispatch(t, d, command.Of(command.PasteBack))
	if b.Text() != "one\nthree\ntwo\ntwo" || b.Cursor().Row != 2 {
		t.Errorf("after PasteBack text %q row %d", b.Text(), b.Cursor().Row)
	}
}

func TestYankLineCount(t *testing.T) {
	d, ed := newTestDispatcher("a\nb\nc")
	if err := dispatch(t, d, command.Of(command.YankLine), 2); err != nil {
		t.Fatal(err)
	}
	if got, _ := ed.Register().Get(); got != "a\nb" {
		t.Errorf("register = %q, want %q", got, "a\nb")
	}
	if ed.FocusedWindow().Buffer().Modified() {
		t.Error("yank modified the buffer")
	}

	mustDispatch(t, d, command.Of(command.Paste))
	if got := ed.FocusedWindow().Buffer().Text(); got != "a\na\nb\nb\nc" {
		t.Errorf("text = %q", got)
	}
}

func TestPasteUnsetRegister(t *testing.T) {
	d, ed := newTestDispatcher("a")
	mustDispatch(t, d, command.Of(command.Paste))
	if got := ed.FocusedWindow().Buffer().Text(); got != "a" {
		t.Errorf("text = %q", got)
	}
}

func TestDeleteBlankLinePasteRoundTrip(t *testing.T) {
	d, ed := newTestDispatcher("a\n\nb")
	b := ed.FocusedWindow().Buffer()
	b.SetCursorRow(1)

	mustDispatch(t, d, command.Of(command.DeleteLine))
	if b.Text() != "a\nb" {
		t.Fatalf("after delete = %q", b.Text())
	}
	if text, ok := ed.Register().Get(); text != "" || !ok {
		t.Fatalf("register = %q, %v", text, ok)
	}

	b.SetCursorRow(0)
	mustDispatch(t, d, command.Of(command.Paste))
	if b.Text() != "a\n\nb" || b.LineCount() != 3 {
		t.Errorf("after paste = %q", b.Text())
	}
	if b.Cursor().Row != 1 {
		t.Errorf("cursor row = %d, want 1", b.Cursor().Row)
	}
}

func TestCommandLineScenario(t *testing.T) {
	ex := &recordingEx{}
	d, ed := newTestDispatcher("text", WithExInterpreter(ex))

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	if ed.Mode() != mode.CommandLine || ed.Focused() != editor.CommandLine {
		t.Fatalf("mode %s focus %d", ed.Mode(), ed.Focused())
	}
	cmdBuf := ed.CommandWindow().Buffer()
	if cmdBuf.Text() != ":" || cmdBuf.Cursor().Col != 1 {
		t.Fatalf("command line %q col %d", cmdBuf.Text(), cmdBuf.Cursor().Col)
	}

	typeLine(t, d, "q")
	mustDispatch(t, d, command.Of(command.ExecuteCommandLine))

	if len(ex.lines) != 1 || ex.lines[0] != "q" {
		t.Fatalf("ex lines = %q, want [q]", ex.lines)
	}
	if ed.Mode() != mode.CommandLine {
		t.Errorf("mode = %s, want command until exit", ed.Mode())
	}
	if cmdBuf.Text() != ":" {
		t.Errorf("command line not reset: %q", cmdBuf.Text())
	}

	mustDispatch(t, d, command.Of(command.ExitCommandMode))
	if ed.Mode() != mode.Normal || ed.Focused() != 1 {
		t.Errorf("after exit mode %s focus %d", ed.Mode(), ed.Focused())
	}
}

func TestExInterpreterErrorReported(t *testing.T) {
	errBad := errors.New("bad range")
	ex := ExFunc(func(_ context.Context, line string) error {
		if line == "bogus" {
			return errBad
		}
		return nil
	})
	d, ed := newTestDispatcher("x", WithExInterpreter(ex))

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "bogus")
	err := dispatch(t, d, command.Of(command.ExecuteCommandLine), 1)
	if !errors.Is(err, errBad) {
		t.Fatalf("got %v, want %v", err, errBad)
	}
	if s := ed.Status(); !s.Error || s.Text != "bad range" {
		t.Errorf("status = %+v", s)
	}
	if got := ed.CommandWindow().Buffer().Text(); got != ":" {
		t.Errorf("command line = %q, want reset", got)
	}
}

func TestExecuteSkipsBookkeeping(t *testing.T) {
	d, ed := newTestDispatcher("x")
	ed.SetStatus("keep")
	if err := d.Execute(context.Background(), command.Message("hi"), 1); err != nil {
		t.Fatal(err)
	}
	if ed.Status().Text != "hi" {
		t.Errorf("status = %q", ed.Status().Text)
	}
	if err := d.Execute(context.Background(), command.Command{Kind: 200}, 1); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("got %v, want ErrInvalidCommand", err)
	}
}

func TestExitCommandModeGuard(t *testing.T) {
	d, ed := newTestDispatcher("x", WithExInterpreter(&recordingEx{}))

	mustDispatch(t, d, command.Of(command.ExitCommandMode), command.Of(command.ExecuteCommandLine))
	if ed.Mode() != mode.Normal || ed.Focused() != 1 {
		t.Errorf("mode %s focus %d", ed.Mode(), ed.Focused())
	}
}

func TestChangeModeNormalLeavesCommandLine(t *testing.T) {
	d, ed := newTestDispatcher("x")
	mustDispatch(t, d, command.Of(command.EnterCommandMode), command.To(mode.Normal))
	if ed.Mode() != mode.Normal || ed.Focused() != 1 {
		t.Errorf("mode %s focus %d", ed.Mode(), ed.Focused())
	}
}

func TestIllegalTransitionIgnored(t *testing.T) {
	d, ed := newTestDispatcher("x")
	mustDispatch(t, d, command.To(mode.Insert), command.To(mode.Visual))
	if ed.Mode() != mode.Insert {
		t.Errorf("mode = %s, want insert", ed.Mode())
	}
}

func TestLeavingInsertClampsCursor(t *testing.T) {
	d, ed := newTestDispatcher("abc")
	mustDispatch(t, d, command.To(mode.Insert), command.Of(command.End))
	if c := cursorOf(ed); c.Col != 3 {
		t.Fatalf("insert End col = %d, want 3", c.Col)
	}
	mustDispatch(t, d, command.To(mode.Normal))
	if c := cursorOf(ed); c.Col != 2 {
		t.Errorf("normal col = %d, want 2", c.Col)
	}
}

func TestBackspaceLeavesEmptyCommandLine(t *testing.T) {
	d, ed := newTestDispatcher("x")
	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "w")
	mustDispatch(t, d, command.Of(command.Backspace))
	if ed.Mode() != mode.CommandLine {
		t.Fatal("left command line too early")
	}
	mustDispatch(t, d, command.Of(command.CursorLeft))
	if col := ed.CommandWindow().Buffer().Cursor().Col; col != 1 {
		t.Errorf("cursor moved onto the marker: col %d", col)
	}
	mustDispatch(t, d, command.Of(command.Backspace))
	if ed.Mode() != mode.Normal {
		t.Errorf("mode = %s, want normal", ed.Mode())
	}
}

func TestScriptMarker(t *testing.T) {
	host := &fakeHost{}
	ex := &recordingEx{}
	d, ed := newTestDispatcher("x", WithScriptHost(host), WithExInterpreter(ex))

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "lua")
	err := dispatch(t, d, command.Of(command.ExecuteCommandLine), 1)
	var uie *UserInputError
	if !errors.As(err, &uie) {
		t.Fatalf("err = %v, want UserInputError", err)
	}
	if s := ed.Status(); s.Text != "lua command takes an argument expr" || !s.Error {
		t.Errorf("status = %+v", s)
	}
	if len(host.evals) != 0 || len(ex.lines) != 0 {
		t.Error("nothing should run for a bare marker")
	}

	typeLine(t, d, "lua x = 1")
	mustDispatch(t, d, command.Of(command.ExecuteCommandLine))
	if len(host.evals) != 1 || host.evals[0] != "x = 1" {
		t.Errorf("evals = %q", host.evals)
	}
}

func TestScriptErrorReported(t *testing.T) {
	host := &fakeHost{fn: func(*ScriptAPI) error { return errors.New("boom") }}
	d, ed := newTestDispatcher("abc", WithScriptHost(host))
	before := ed.FocusedWindow().Buffer().Text()

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "lua error('boom')")
	err := dispatch(t, d, command.Of(command.ExecuteCommandLine), 1)

	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want ScriptError", err)
	}
	if s := ed.Status(); s.Text != "script error: boom" {
		t.Errorf("status = %q", s.Text)
	}
	if ed.DisplayWindow().Buffer().Text() != before || !ed.Running {
		t.Error("script failure changed editor state")
	}
}

func TestScriptAPI(t *testing.T) {
	host := &fakeHost{fn: func(api *ScriptAPI) error {
		if err := api.CursorDown(2); err != nil {
			return err
		}
		if err := api.SetCursorCol(1); err != nil {
			return err
		}
		return api.Bind(mode.Normal, "Z Z", command.Of(command.Quit))
	}}
	d, ed := newTestDispatcher("a\nb\ncd\ne", WithScriptHost(host))

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "lua move()")
	mustDispatch(t, d, command.Of(command.ExecuteCommandLine))

	if c := cursorOf(ed); c.Row != 2 || c.Col != 1 {
		t.Errorf("text cursor = %v, want (2, 1)", c)
	}
	if class, cmd := d.Table().Lookup(mode.Normal, keySeq("Z Z")); class != keymap.Complete || cmd.Kind != command.Quit {
		t.Errorf("Z Z = %s %s", class, cmd)
	}

	if err := host.kept.CursorUp(1); !errors.Is(err, ErrExpired) {
		t.Errorf("API after return: err = %v, want ErrExpired", err)
	}
	if err := host.kept.Bind(mode.Normal, "Q", command.Of(command.Quit)); !errors.Is(err, ErrExpired) {
		t.Errorf("Bind after return: err = %v, want ErrExpired", err)
	}
}

func TestInvokeScript(t *testing.T) {
	host := &fakeHost{fn: func(api *ScriptAPI) error { return api.SetScrollRow(3) }}
	d, ed := newTestDispatcher(strings.Repeat("line\n", 30), WithScriptHost(host))

	mustDispatch(t, d, command.Script(7))
	if len(host.invokes) != 1 || host.invokes[0] != 7 {
		t.Fatalf("invokes = %v", host.invokes)
	}
	if c := cursorOf(ed); c.ScrollRow != 3 || c.Row != 3 {
		t.Errorf("cursor = %+v, want scroll 3 row 3", c)
	}
}

func TestNoScriptHost(t *testing.T) {
	d, _ := newTestDispatcher("x")
	if err := dispatch(t, d, command.Script(1), 1); !errors.Is(err, ErrNoScriptHost) {
		t.Errorf("err = %v", err)
	}
}

func TestScriptPanicRecovered(t *testing.T) {
	host := &fakeHost{fn: func(*ScriptAPI) error { panic("bad host") }}
	d, ed := newTestDispatcher("x", WithScriptHost(host))

	err := dispatch(t, d, command.Script(1), 1)
	if !errors.Is(err, ErrPanic) {
		t.Fatalf("err = %v, want ErrPanic", err)
	}
	if !ed.Running || !ed.Status().Error {
		t.Error("panic should be reported, not fatal")
	}
}

func TestCloseWindow(t *testing.T) {
	d, ed := newTestDispatcher("x")

	err := dispatch(t, d, command.Of(command.CloseWindow), 1)
	if !errors.Is(err, editor.ErrLastWindow) {
		t.Errorf("err = %v, want ErrLastWindow", err)
	}
	if ed.Status().Text != "cannot close last window" || ed.TextWindowCount() != 1 {
		t.Errorf("status %q windows %d", ed.Status().Text, ed.TextWindowCount())
	}

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	if err := dispatch(t, d, command.Of(command.CloseWindow), 1); !errors.Is(err, editor.ErrCommandWindow) {
		t.Errorf("closing from the command line: err = %v", err)
	}

	ed2 := editor.New(editor.WithBuffer(buffer.New()), editor.WithBuffer(buffer.New()))
	d2 := New(ed2, keymap.NewDefaultTable())
	mustDispatch(t, d2, command.Of(command.NextWindow), command.Of(command.CloseWindow))
	if ed2.TextWindowCount() != 1 || ed2.Focused() != 1 {
		t.Errorf("windows %d focus %d", ed2.TextWindowCount(), ed2.Focused())
	}
}

func TestQuitStopsDispatch(t *testing.T) {
	d, ed := newTestDispatcher("x")
	mustDispatch(t, d, command.Of(command.Quit))
	if ed.Running {
		t.Fatal("still running after Quit")
	}
	if err := dispatch(t, d, command.Of(command.CursorDown), 1); !errors.Is(err, ErrNotRunning) {
		t.Errorf("err = %v, want ErrNotRunning", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	d, ed := newTestDispatcher("alpha\nbeta")

	mustDispatch(t, d, command.SaveAs(path))
	if !strings.Contains(ed.Status().Text, "2L written") {
		t.Errorf("status = %q", ed.Status().Text)
	}

	b, err := buffer.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if b.Text() != "alpha\nbeta" {
		t.Errorf("reloaded %q", b.Text())
	}
}

func TestSaveFailureReported(t *testing.T) {
	d, ed := newTestDispatcher("x")
	err := dispatch(t, d, command.Of(command.Save), 1)
	if !errors.Is(err, buffer.ErrNoPath) {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
	if !ed.Status().Error || !ed.Running {
		t.Error("save failure should be a status message")
	}
}

func TestStubsReportNotImplemented(t *testing.T) {
	d, ed := newTestDispatcher("x")
	for _, k := range []command.Kind{command.JumpListBack, command.JumpListForward, command.Undo} {
		err := dispatch(t, d, command.Of(k), 1)
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("%s: err = %v", k, err)
		}
		if want := "not implemented: " + k.String(); ed.Status().Text != want {
			t.Errorf("status = %q, want %q", ed.Status().Text, want)
		}
	}
}

func TestPrintAndListBuffers(t *testing.T) {
	d, ed := newTestDispatcher("x")
	ed.AddBuffer(buffer.New(buffer.WithName("other")))

	mustDispatch(t, d, command.Message("hello"))
	if ed.Status().Text != "hello" {
		t.Errorf("status = %q", ed.Status().Text)
	}

	mustDispatch(t, d, command.Of(command.ListBuffers))
	want := `1% "[No Name]"  2 "other"`
	if ed.Status().Text != want {
		t.Errorf("listing = %q, want %q", ed.Status().Text, want)
	}
}

func TestRunCommandLineWithoutInterpreter(t *testing.T) {
	d, ed := newTestDispatcher("x")
	if err := d.RunCommandLine(context.Background(), "frob"); err == nil {
		t.Error("expected an error")
	}
	if s := ed.Status(); s.Text != "not an editor command: frob" || !s.Error {
		t.Errorf("status = %+v", s)
	}
}

// reportedErr counts how often its message is read.
type reportedErr struct{ reads int }

func (e *reportedErr) Error() string {
	e.reads++
	return "boom"
}

func TestCommandLineFailureReportedOnce(t *testing.T) {
	failure := &reportedErr{}
	ex := ExFunc(func(context.Context, string) error { return failure })
	d, ed := newTestDispatcher("x", WithExInterpreter(ex))

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	typeLine(t, d, "w")
	err := dispatch(t, d, command.Of(command.ExecuteCommandLine), 1)
	if err != failure {
		t.Fatalf("err = %v, want the interpreter's error", err)
	}
	if s := ed.Status(); s.Text != "boom" || !s.Error {
		t.Errorf("status = %+v", s)
	}
	if failure.reads != 1 {
		t.Errorf("failure reported %d times, want once", failure.reads)
	}
}

func TestDispatchMarksDirty(t *testing.T) {
	d, ed := newTestDispatcher("a\nb")
	ed.TakeDirty()

	mustDispatch(t, d, command.Of(command.CursorDown))
	if got := ed.TakeDirty(); len(got) != 1 || got[0] != 1 {
		t.Errorf("dirty = %v, want [1]", got)
	}

	mustDispatch(t, d, command.Of(command.EnterCommandMode))
	if got := ed.TakeDirty(); len(got) != 2 {
		t.Errorf("dirty = %v, want both windows", got)
	}
}

func TestMetrics(t *testing.T) {
	d, _ := newTestDispatcher("a\nb", WithConfig(DefaultConfig().WithMetrics()))
	mustDispatch(t, d, command.Of(command.CursorDown), command.Of(command.CursorDown))
	_ = dispatch(t, d, command.Of(command.Undo), 1)

	m := d.Metrics()
	if m.TotalDispatches() != 3 || m.TotalErrors() != 1 {
		t.Errorf("dispatches %d errors %d", m.TotalDispatches(), m.TotalErrors())
	}
	if s := m.CommandStats(command.CursorDown); s == nil || s.DispatchCount != 2 {
		t.Errorf("CursorDown stats = %+v", s)
	}
	if top := m.Busiest(1); len(top) != 1 || top[0].Kind != command.CursorDown {
		t.Errorf("Busiest(1) = %+v", top)
	}
	sum := m.Summary()
	if !strings.HasPrefix(sum, "3 dispatches, 1 errors, 0 panics") || !strings.Contains(sum, "; CursorDown=2, Undo=1") {
		t.Errorf("Summary = %q", sum)
	}
}

func TestMaxRepeatCount(t *testing.T) {
	d, ed := newTestDispatcher("", WithConfig(DefaultConfig().WithMaxRepeatCount(3)))
	if err := dispatch(t, d, command.Char('a'), 100); err != nil {
		t.Fatal(err)
	}
	if got := ed.FocusedWindow().Buffer().Text(); got != "aaa" {
		t.Errorf("text = %q, want count capped at 3", got)
	}
}

func keySeq(s string) *key.Sequence {
	return key.MustParseSequence(s)
}
