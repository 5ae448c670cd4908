package keymap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Loader reads keymap files.
type Loader struct {
	searchPaths []string
}

// NewLoader creates a loader searching the given directories for
// *.yaml and *.yml files.
func NewLoader(searchPaths ...string) *Loader {
	return &Loader{searchPaths: searchPaths}
}

// LoadReader decodes every YAML document in r as a keymap.
func (l *Loader) LoadReader(r io.Reader) ([]*Keymap, error) {
	dec := yaml.NewDecoder(r)
	var out []*Keymap
	for {
		var km Keymap
		err := dec.Decode(&km)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("keymap: decode: %w", err)
		}
		if km.Mode == "" {
			return nil, fmt.Errorf("keymap: %q has no mode", km.Name)
		}
		out = append(out, &km)
	}
	return out, nil
}

// LoadFile loads the keymaps in path.
func (l *Loader) LoadFile(path string) ([]*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	kms, err := l.LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, km := range kms {
		km.Source = path
		if km.Name == "" {
			km.Name = filepath.Base(path)
		}
	}
	return kms, nil
}

// LoadAll loads every keymap file in the search paths, in lexical order
// per directory. Missing directories are skipped.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	var out []*Keymap
	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var names []string
		for _, e := range entries {
			ext := filepath.Ext(e.Name())
			if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			kms, err := l.LoadFile(filepath.Join(dir, name))
			if err != nil {
				return nil, err
			}
			out = append(out, kms...)
		}
	}
	return out, nil
}

// ApplyAll applies keymaps to t in order, so later files override earlier
// ones.
func ApplyAll(t *Table, kms []*Keymap) error {
	for _, km := range kms {
		if err := km.Apply(t); err != nil {
			return err
		}
	}
	return nil
}
