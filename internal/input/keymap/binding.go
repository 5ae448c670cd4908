package keymap

import (
	"fmt"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/input/key"
	"github.com/dshills/vedit/internal/input/mode"
)

// Binding is a declarative key binding as written in keymap files.
type Binding struct {
	// Keys is the key sequence, e.g. "g g" or "<C-w>c".
	Keys string `yaml:"keys"`

	// Command is the command name, e.g. "DeleteLine".
	Command string `yaml:"command"`

	// Arg is the command's argument, if it takes one.
	Arg string `yaml:"arg,omitempty"`

	// Description is shown in binding listings.
	Description string `yaml:"description,omitempty"`
}

// Parse resolves the binding's keys and command.
func (b Binding) Parse() (*key.Sequence, command.Command, error) {
	seq, err := key.ParseSequence(b.Keys)
	if err != nil {
		return nil, command.Command{}, fmt.Errorf("keys %q: %w", b.Keys, err)
	}
	cmd, err := command.Parse(b.Command, b.Arg)
	if err != nil {
		return nil, command.Command{}, fmt.Errorf("keys %q: %w", b.Keys, err)
	}
	return seq, cmd, nil
}

// Keymap is a named group of bindings for one mode.
type Keymap struct {
	Name     string    `yaml:"name"`
	Mode     string    `yaml:"mode"`
	Bindings []Binding `yaml:"bindings"`

	// Source records where the keymap came from ("default" or a file path).
	Source string `yaml:"-"`
}

// Apply binds every binding of km into t. It stops at the first invalid
// binding; bindings before it remain applied.
func (km *Keymap) Apply(t *Table) error {
	m, err := mode.Parse(km.Mode)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", km.Name, err)
	}
	for _, b := range km.Bindings {
		seq, cmd, err := b.Parse()
		if err != nil {
			return fmt.Errorf("keymap %s: %w", km.Name, err)
		}
		if err := t.Bind(m, seq, cmd); err != nil {
			return fmt.Errorf("keymap %s: %w", km.Name, err)
		}
	}
	return nil
}
