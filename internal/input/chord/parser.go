package chord

import (
	"slices"

	"github.com/dshills/vedit/internal/command"
	"github.com/dshills/vedit/internal/input/key"
	"github.com/dshills/vedit/internal/input/keymap"
	"github.com/dshills/vedit/internal/input/mode"
)

// Outcome is what a key event did to the chord in progress.
type Outcome uint8

const (
	// Pending means the parser is waiting for more keys.
	Pending Outcome = iota

	// Fire means Resolution.Command should be dispatched Count times.
	Fire

	// Literal means Resolution.Text should be inserted as typed.
	Literal

	// Unmapped means the keys matched nothing and were discarded.
	Unmapped

	// Cancelled means Escape discarded the chord in progress.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Fire:
		return "fire"
	case Literal:
		return "literal"
	case Unmapped:
		return "unmapped"
	case Cancelled:
		return "cancelled"
	}
	return "pending"
}

// Resolution is the result of feeding one key event.
type Resolution struct {
	Outcome Outcome

	// Command and Count are set for Fire. Count is at least 1.
	Command command.Command
	Count   int

	// Text holds the characters for Literal, or the discarded keys for
	// Unmapped.
	Text string

	// Next is set when one key resolved into several steps, such as a
	// flushed literal followed by the binding of the key that broke the
	// chord. Steps are applied in order.
	Next *Resolution
}

// Bindings is the lookup the parser needs from a binding table.
type Bindings interface {
	Lookup(m mode.Mode, seq *key.Sequence) (keymap.Classification, command.Command)
}

// Parser resolves key events into commands.
// A Parser is not safe for concurrent use.
type Parser struct {
	bindings Bindings
	count    Count
	pending  *key.Sequence
}

// NewParser creates a parser resolving against b.
func NewParser(b Bindings) *Parser {
	return &Parser{
		bindings: b,
		pending:  key.NewSequence(),
	}
}

// Reset returns the parser to its empty state.
func (p *Parser) Reset() {
	p.count.Reset()
	p.pending.Clear()
}

// Idle reports whether no chord is in progress.
func (p *Parser) Idle() bool {
	return !p.count.Active() && p.pending.IsEmpty()
}

// Pending returns the chord typed so far, e.g. "3d".
func (p *Parser) Pending() string {
	s := p.count.String()
	for _, e := range p.pending.Events {
		s += e.String()
	}
	return s
}

// Feed processes one key event in mode m.
func (p *Parser) Feed(ev key.Event, m mode.Mode) Resolution {
	if ev.IsEscape() && !p.Idle() {
		p.Reset()
		return Resolution{Outcome: Cancelled}
	}

	if m.AcceptsCount() && p.pending.IsEmpty() && ev.IsDigit() && p.count.Accumulate(ev.Rune) {
		return Resolution{Outcome: Pending}
	}

	p.pending.Add(ev)
	class, cmd := p.bindings.Lookup(m, p.pending)
	switch class {
	case keymap.Complete:
		res := Resolution{Outcome: Fire, Command: cmd, Count: p.count.Get()}
		p.Reset()
		return res
	case keymap.Prefix, keymap.CompleteExtensible:
		return Resolution{Outcome: Pending}
	}
	return p.flush(m)
}

// flush ends the chord after a failed lookup. Outside literal modes the
// keys are discarded. In literal modes the first key is emitted on its
// own and the rest are fed again, so a key that broke a chord can still
// match its own binding.
func (p *Parser) flush(m mode.Mode) Resolution {
	if p.pending.Len() == 1 && p.pending.Events[0].IsEscape() {
		p.Reset()
		return Resolution{Outcome: Cancelled}
	}
	if !m.LiteralInput() {
		res := Resolution{Outcome: Unmapped, Text: p.Pending()}
		p.Reset()
		return res
	}

	events := slices.Clone(p.pending.Events)
	p.Reset()

	first := events[0]
	res := Resolution{Outcome: Unmapped, Text: first.String()}
	if first.IsChar() {
		res = Resolution{Outcome: Literal, Text: string(first.Rune), Count: 1}
	}
	tail := &res
	for _, ev := range events[1:] {
		next := p.Feed(ev, m)
		tail = tail.append(next)
	}
	return res
}

// append links next after r and returns the new last step. Pending steps
// carry nothing to apply and are dropped, and a literal directly following
// a literal is merged into it.
func (r *Resolution) append(next Resolution) *Resolution {
	switch {
	case next.Outcome == Pending:
		return r
	case r.Outcome == Literal && next.Outcome == Literal:
		r.Text += next.Text
		if next.Next == nil {
			return r
		}
		return r.append(*next.Next)
	}
	r.Next = &next
	r = r.Next
	for r.Next != nil {
		r = r.Next
	}
	return r
}
