package buffer

import "unicode"

// charClass groups characters for word motion.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	default:
		return classPunct
	}
}

// MoveForwardByWord moves to the start of the next word on the current
// line, or to the line end when no word follows. It is a no-op at the end
// of the line.
func (b *Buffer) MoveForwardByWord() {
	line := []rune(b.LineText(b.cursor.Row))
	i := b.cursor.Col
	if i >= len(line) {
		return
	}
	cls := classify(line[i])
	for i < len(line) && classify(line[i]) == cls {
		i++
	}
	for i < len(line) && classify(line[i]) == classSpace {
		i++
	}
	b.setCol(i)
}

// MoveBackwardByWord moves to the start of the previous word on the
// current line. It is a no-op at column 0.
func (b *Buffer) MoveBackwardByWord() {
	line := []rune(b.LineText(b.cursor.Row))
	i := min(b.cursor.Col, len(line))
	if i == 0 {
		return
	}
	i--
	for i > 0 && classify(line[i]) == classSpace {
		i--
	}
	cls := classify(line[i])
	for i > 0 && classify(line[i-1]) == cls {
		i--
	}
	b.setCol(i)
}

// FirstCharInLine moves to the first non-blank column of the line, or to
// the line end if the line is blank.
func (b *Buffer) FirstCharInLine() {
	col := 0
	for _, r := range b.LineText(b.cursor.Row) {
		if !unicode.IsSpace(r) {
			break
		}
		col++
	}
	b.setCol(col)
}
