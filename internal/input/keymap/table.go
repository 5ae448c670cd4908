package keymap

import (
	"errors"
	"sort"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/input/key"
	"github.com/dshills/vedit/internal/input/mode"
)

// ErrEmptySequence is returned when binding an empty key sequence.
var ErrEmptySequence = errors.New("keymap: empty key sequence")

// Classification is the result of looking up a key sequence.
type Classification uint8

const (
	// NoMatch means no binding equals or extends the sequence.
	NoMatch Classification = iota

	// Prefix means the sequence only begins one or more longer bindings.
	Prefix

	// Complete means the sequence is bound and no longer binding shares it.
	Complete

	// CompleteExtensible means the sequence is bound but is also the
	// prefix of a longer binding.
	CompleteExtensible
)

// String returns the classification name.
func (c Classification) String() string {
	switch c {
	case Prefix:
		return "prefix"
	case Complete:
		return "complete"
	case CompleteExtensible:
		return "complete-extensible"
	}
	return "no-match"
}

// Waits reports whether the caller should wait for more keys.
func (c Classification) Waits() bool {
	return c == Prefix || c == CompleteExtensible
}

type node struct {
	children map[string]*node
	cmd      *command.Command
	seq      *key.Sequence
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Table maps key sequences to commands per mode.
// A Table is not safe for concurrent use.
type Table struct {
	roots map[mode.Mode]*node
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{roots: make(map[mode.Mode]*node)}
}

// Bind binds seq to cmd in mode m, replacing any existing binding.
func (t *Table) Bind(m mode.Mode, seq *key.Sequence, cmd command.Command) error {
	if seq == nil || seq.IsEmpty() {
		return ErrEmptySequence
	}
	n, ok := t.roots[m]
	if !ok {
		n = newNode()
		t.roots[m] = n
	}
	for _, e := range seq.Events {
		k := e.String()
		child, ok := n.children[k]
		if !ok {
			child = newNode()
			n.children[k] = child
		}
		n = child
	}
	n.cmd = &cmd
	n.seq = seq.Clone()
	return nil
}

// BindKeys parses spec and binds it to cmd in mode m.
func (t *Table) BindKeys(m mode.Mode, spec string, cmd command.Command) error {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	return t.Bind(m, seq, cmd)
}

// Unbind removes the binding for seq in mode m and reports whether one
// existed. Branches left empty are pruned.
func (t *Table) Unbind(m mode.Mode, seq *key.Sequence) bool {
	root, ok := t.roots[m]
	if !ok || seq == nil || seq.IsEmpty() {
		return false
	}
	path := []*node{root}
	n := root
	for _, e := range seq.Events {
		child, ok := n.children[e.String()]
		if !ok {
			return false
		}
		path = append(path, child)
		n = child
	}
	if n.cmd == nil {
		return false
	}
	n.cmd, n.seq = nil, nil
	for i := len(path) - 1; i > 0; i-- {
		if path[i].cmd != nil || len(path[i].children) > 0 {
			break
		}
		delete(path[i-1].children, seq.Events[i-1].String())
	}
	return true
}

// Lookup classifies seq in mode m. The command is only meaningful for
// Complete and CompleteExtensible.
func (t *Table) Lookup(m mode.Mode, seq *key.Sequence) (Classification, command.Command) {
	n, ok := t.roots[m]
	if !ok || seq == nil || seq.IsEmpty() {
		return NoMatch, command.Command{}
	}
	for _, e := range seq.Events {
		if n, ok = n.children[e.String()]; !ok {
			return NoMatch, command.Command{}
		}
	}
	switch {
	case n.cmd != nil && len(n.children) > 0:
		return CompleteExtensible, *n.cmd
	case n.cmd != nil:
		return Complete, *n.cmd
	case len(n.children) > 0:
		return Prefix, command.Command{}
	}
	return NoMatch, command.Command{}
}

// Entry is one binding in a listing.
type Entry struct {
	Keys    *key.Sequence
	Command command.Command
}

// Bindings returns the bindings of mode m ordered by key string.
func (t *Table) Bindings(m mode.Mode) []Entry {
	var out []Entry
	var walk func(n *node)
	walk = func(n *node) {
		if n.cmd != nil {
			out = append(out, Entry{Keys: n.seq, Command: *n.cmd})
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	if root, ok := t.roots[m]; ok {
		walk(root)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Keys.String() < out[j].Keys.String()
	})
	return out
}

// Len returns the number of bindings in mode m.
func (t *Table) Len(m mode.Mode) int {
	return len(t.Bindings(m))
}
