package key

import (
	"strings"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is held. Shift alone does
// not count for characters since it is already part of the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsChar returns true for an unmodified printable character, the kind of
// event that can be inserted as text.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsDigit returns true for an unmodified ASCII digit.
func (e Event) IsDigit() bool {
	return e.IsChar() && e.Rune >= '0' && e.Rune <= '9'
}

// IsEscape returns true for the Escape key with no modifiers.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// IsInterrupt returns true for Ctrl-C.
func (e Event) IsInterrupt() bool {
	return e.IsRune() && e.Modifiers.Has(ModCtrl) && unicode.ToLower(e.Rune) == 'c'
}

// Normalize returns the canonical form of the event: Shift is dropped from
// characters and Ctrl combinations use the lower-case letter.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// Equals returns true if two events are the same key press once
// normalized.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// String returns the canonical Vim-style notation: plain characters as
// themselves and everything else in angle brackets.
// Examples: "a", "G", "<Space>", "<C-s>", "<CR>", "<S-Tab>".
func (e Event) String() string {
	e = e.Normalize()
	if e.IsRune() && e.Modifiers == ModNone {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var sb strings.Builder
	sb.WriteByte('<')
	if mods := e.Modifiers.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte('-')
	}
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		sb.WriteString("Space")
	case e.Key == KeyRune:
		sb.WriteRune(e.Rune)
	default:
		sb.WriteString(e.Key.String())
	}
	sb.WriteByte('>')
	return sb.String()
}
