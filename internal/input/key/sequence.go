package key

import (
	"strings"
	"unicode/utf8"
)

// Sequence is an ordered series of key events forming a chord.
// Examples: "g g" (first line), "d d" (delete line), "<C-w> w" (next window).
type Sequence struct {
	Events []Event
}

// NewSequence creates a sequence from the given events.
func NewSequence(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// IsEmpty returns true if the sequence has no events.
func (s *Sequence) IsEmpty() bool {
	return len(s.Events) == 0
}

// Add appends an event to the sequence.
func (s *Sequence) Add(e Event) {
	s.Events = append(s.Events, e)
}

// Clear removes all events from the sequence.
func (s *Sequence) Clear() {
	s.Events = s.Events[:0]
}

// Clone returns a copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{Events: append([]Event(nil), s.Events...)}
}

// Equals returns true if two sequences hold equal events.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// HasPrefix returns true if this sequence starts with prefix.
func (s *Sequence) HasPrefix(prefix *Sequence) bool {
	if prefix == nil || prefix.IsEmpty() {
		return true
	}
	if len(prefix.Events) > len(s.Events) {
		return false
	}
	for i, e := range prefix.Events {
		if !e.Equals(s.Events[i]) {
			return false
		}
	}
	return true
}

// String returns the space separated canonical form, e.g. "g g", "<C-w> c".
func (s *Sequence) String() string {
	parts := make([]string, len(s.Events))
	for i, e := range s.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Text returns the characters of the sequence's unmodified character
// events, in order. Special keys are skipped.
func (s *Sequence) Text() string {
	var sb strings.Builder
	for _, e := range s.Events {
		if e.IsChar() {
			sb.WriteRune(e.Rune)
		}
	}
	return sb.String()
}

// ParseSequence parses a key sequence string.
// The string can contain space separated keys or a continuous sequence.
// Examples: "g g", "dd", "<C-x><C-s>", "<C-w>c".
func ParseSequence(s string) (*Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptySpec
	}
	seq := NewSequence()

	if strings.ContainsRune(s, ' ') {
		for _, part := range strings.Fields(s) {
			e, err := Parse(part)
			if err == nil {
				seq.Add(e)
				continue
			}
			sub, subErr := ParseSequence(part)
			if subErr != nil || sub.Len() < 2 {
				return nil, err
			}
			seq.Events = append(seq.Events, sub.Events...)
		}
		return seq, nil
	}

	if e, err := Parse(s); err == nil {
		seq.Add(e)
		return seq, nil
	}
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if end := strings.IndexByte(s[i:], '>'); end > 1 {
				e, err := Parse(s[i : i+end+1])
				if err != nil {
					return nil, err
				}
				seq.Add(e)
				i += end + 1
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		e, err := Parse(string(r))
		if err != nil {
			return nil, err
		}
		seq.Add(e)
		i += size
	}
	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
