package lib

// cursor is the position-tracking reader over the input. It is created once
// per input string and owned by exactly one scanner; it only ever moves
// forward.
type cursor struct {
	input  []rune
	length int
	offset int
	line   int
	col    int
}

func newCursor(input string) *cursor {
	runes := []rune(input)
	return &cursor{
		input:  runes,
		length: len(runes),
		offset: 0,
		line:   1,
		col:    1,
	}
}

// peek returns the current character without consuming it. The second return
// is false at end of input.
func (c *cursor) peek() (rune, bool) {
	return c.peekAt(0)
}

// peekAt looks n characters past the current offset without consuming
// anything.
func (c *cursor) peekAt(n int) (rune, bool) {
	i := c.offset + n
	if i >= c.length {
		return 0, false
	}
	return c.input[i], true
}

// advance consumes and returns the current character. At end of input it
// returns false and changes nothing, so repeated calls are safe.
func (c *cursor) advance() (rune, bool) {
	ch, ok := c.peek()
	if !ok {
		return 0, false
	}
	c.offset++
	if ch == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return ch, true
}

func (c *cursor) position() Position {
	return Position{Offset: c.offset, Line: c.line, Col: c.col}
}

// text returns the lexeme between two rune offsets.
func (c *cursor) text(from, to int) string {
	return string(c.input[from:to])
}
