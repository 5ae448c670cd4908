package chord

import "math"

// maxCount caps accumulated counts so they cannot overflow.
const maxCount = math.MaxInt32

// Count accumulates a numeric prefix.
type Count struct {
	value  int
	active bool
	digits []rune
}

// Reset clears the count.
func (c *Count) Reset() {
	c.value = 0
	c.active = false
	c.digits = c.digits[:0]
}

// Active reports whether any digit has been accepted.
func (c *Count) Active() bool {
	return c.active
}

// Accumulate adds digit r to the count and reports whether it was taken.
// A leading '0' is not a count.
func (c *Count) Accumulate(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}
	digit := int(r - '0')
	if !c.active && digit == 0 {
		return false
	}
	c.active = true
	c.digits = append(c.digits, r)
	if c.value > (maxCount-digit)/10 {
		c.value = maxCount
		return true
	}
	c.value = c.value*10 + digit
	return true
}

// Get returns the effective count, 1 when no digits were typed.
func (c *Count) Get() int {
	if c.value <= 0 {
		return 1
	}
	return c.value
}

// String returns the digits typed so far.
func (c *Count) String() string {
	return string(c.digits)
}
