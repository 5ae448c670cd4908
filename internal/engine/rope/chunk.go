package rope

import "unicode/utf8"

// Chunk size constants control the granularity of text storage.
const (
	// MinChunkSize is the minimum bytes per chunk (except for the last chunk).
	MinChunkSize = 128

	// MaxChunkSize is the maximum bytes per chunk before splitting.
	MaxChunkSize = 256

	// TargetChunkSize is the preferred chunk size when building.
	TargetChunkSize = (MinChunkSize + MaxChunkSize) / 2
)

// Chunk is an immutable run of text stored in a leaf node.
type Chunk struct {
	data    string
	summary Summary
}

// NewChunk creates a chunk from a string.
func NewChunk(s string) Chunk {
	return Chunk{data: s, summary: Measure(s)}
}

// String returns the chunk's text.
func (c Chunk) String() string {
	return c.data
}

// Summary returns the chunk's metrics.
func (c Chunk) Summary() Summary {
	return c.summary
}

// IsEmpty returns true if the chunk contains no text.
func (c Chunk) IsEmpty() bool {
	return len(c.data) == 0
}

// byteIndex converts a rune offset within the chunk to a byte index.
func (c Chunk) byteIndex(runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	if runeOffset >= c.summary.Runes {
		return len(c.data)
	}
	if c.summary.Runes == c.summary.Bytes {
		return runeOffset
	}
	n := 0
	for i := range c.data {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(c.data)
}

// Split splits the chunk at a rune offset.
func (c Chunk) Split(runeOffset int) (Chunk, Chunk) {
	if runeOffset <= 0 {
		return Chunk{}, c
	}
	if runeOffset >= c.summary.Runes {
		return c, Chunk{}
	}
	i := c.byteIndex(runeOffset)
	return NewChunk(c.data[:i]), NewChunk(c.data[i:])
}

// slice returns the text between two rune offsets.
func (c Chunk) slice(start, end int) string {
	return c.data[c.byteIndex(start):c.byteIndex(end)]
}

// runeAt returns the rune at a rune offset within the chunk.
func (c Chunk) runeAt(runeOffset int) rune {
	r, _ := utf8.DecodeRuneInString(c.data[c.byteIndex(runeOffset):])
	return r
}

// newlineEnd returns the rune offset just past the k-th newline (1-based).
func (c Chunk) newlineEnd(k int) int {
	n := 0
	for _, r := range c.data {
		n++
		if r == '\n' {
			k--
			if k == 0 {
				return n
			}
		}
	}
	return n
}

// splitIntoChunks splits a string into chunks of appropriate size.
func splitIntoChunks(s string) []Chunk {
	if len(s) == 0 {
		return nil
	}
	var chunks []Chunk
	remaining := s
	for len(remaining) > MaxChunkSize {
		at := findSplitPoint(remaining, TargetChunkSize)
		chunks = append(chunks, NewChunk(remaining[:at]))
		remaining = remaining[at:]
	}
	return append(chunks, NewChunk(remaining))
}

// findSplitPoint finds a UTF-8 boundary near target, preferring the byte
// after a newline.
func findSplitPoint(s string, target int) int {
	lo := max(target-MinChunkSize/4, 1)
	hi := min(target+MinChunkSize/4, len(s))
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}
	pos := target
	for pos < len(s) && !utf8.RuneStart(s[pos]) {
		pos++
	}
	return pos
}
