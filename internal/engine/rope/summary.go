package rope

import "unicode/utf8"

// Summary holds aggregated metrics for a span of text.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Runes is the character count.
	Runes int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries. The zero Summary is the identity.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes: s.Bytes + other.Bytes,
		Runes: s.Runes + other.Runes,
		Lines: s.Lines + other.Lines,
	}
}

// IsZero reports whether the summary describes empty text.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// Measure computes the summary of s.
func Measure(s string) Summary {
	sum := Summary{Bytes: len(s)}
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c == '\n' {
				sum.Lines++
			}
			i++
		} else {
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
		}
		sum.Runes++
	}
	return sum
}
