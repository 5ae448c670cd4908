package loader

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func TestTOMLLoader_Load(t *testing.T) {
	fsys := memFS{"/config.toml": `
[editor]
tab_width = 8
line_numbers = false

[keymap]
files = ["a.yaml", "b.yaml"]
`}

	cfg, err := NewTOMLLoaderWithFS(fsys, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	editor, ok := cfg["editor"].(map[string]any)
	if !ok {
		t.Fatalf("editor section missing: %v", cfg)
	}
	if editor["tab_width"] != int64(8) {
		t.Errorf("tab_width = %#v, want 8", editor["tab_width"])
	}
	if editor["line_numbers"] != false {
		t.Errorf("line_numbers = %#v, want false", editor["line_numbers"])
	}
	files := cfg["keymap"].(map[string]any)["files"]
	if !reflect.DeepEqual(files, []any{"a.yaml", "b.yaml"}) {
		t.Errorf("files = %#v", files)
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	cfg, err := NewTOMLLoaderWithFS(memFS{}, "/nope.toml").Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != nil {
		t.Errorf("got %v, want nil", cfg)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	fsys := memFS{"/bad.toml": "[editor]\ntab_width = = 3\n"}

	_, err := NewTOMLLoaderWithFS(fsys, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want *ParseError", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "line 2") {
		t.Errorf("message %q lacks position", perr.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	cfg, err := NewTOMLLoader("").LoadFromReader(strings.NewReader("[log]\nlevel = \"debug\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg["log"].(map[string]any)["level"]; got != "debug" {
		t.Errorf("level = %v", got)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"editor": map[string]any{"tab_width": int64(4), "status_bar": true},
		"log":    map[string]any{"level": "info"},
	}
	src := map[string]any{
		"editor": map[string]any{"tab_width": int64(2)},
		"script": map[string]any{"init": "init.lua"},
	}

	got := DeepMerge(dst, src)
	want := map[string]any{
		"editor": map[string]any{"tab_width": int64(2), "status_bar": true},
		"log":    map[string]any{"level": "info"},
		"script": map[string]any{"init": "init.lua"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{"keymap": map[string]any{"files": []any{"a"}}}
	dup := Clone(src)
	dup["keymap"].(map[string]any)["files"].([]any)[0] = "b"

	if src["keymap"].(map[string]any)["files"].([]any)[0] != "a" {
		t.Error("Clone shares nested slices with its source")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("VEDIT_")
	l.environ = func() []string {
		return []string{
			"VEDIT_EDITOR_TAB_WIDTH=8",
			"VEDIT_CLIPBOARD_SYSTEM=yes",
			"VEDIT_KEYMAP_FILES=[a.yaml, b.yaml]",
			"VEDIT_LOG_LEVEL=debug",
			"VEDIT_BOGUS=1",
			"HOME=/home/x",
			"MY_LOG=trace",
		}
	}
	l.AddMapping("MY_LOG", "log.file")

	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		section, key string
		want         any
	}{
		{"editor", "tab_width", int64(8)},
		{"clipboard", "system", true},
		{"keymap", "files", []any{"a.yaml", "b.yaml"}},
		{"log", "level", "debug"},
		{"log", "file", "trace"},
	}
	for _, tt := range tests {
		t.Run(tt.section+"."+tt.key, func(t *testing.T) {
			sec, ok := cfg[tt.section].(map[string]any)
			if !ok {
				t.Fatalf("section %q missing in %v", tt.section, cfg)
			}
			if !reflect.DeepEqual(sec[tt.key], tt.want) {
				t.Errorf("got %#v, want %#v", sec[tt.key], tt.want)
			}
		})
	}
	if _, ok := cfg["bogus"]; ok {
		t.Error("variable without a key should be skipped")
	}
}

func TestEnvLoader_Empty(t *testing.T) {
	l := NewEnvLoader("VEDIT_")
	l.environ = func() []string { return []string{"PATH=/bin"} }

	cfg, err := l.Load()
	if err != nil || cfg != nil {
		t.Errorf("got %v, %v; want nil, nil", cfg, err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"1", int64(1)},
		{"0", int64(0)},
		{"on", true},
		{"False", false},
		{"1.5", 1.5},
		{"2s", "2s"},
		{"[]", []any{}},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := parseValue(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseValue(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
