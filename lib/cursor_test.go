package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorPeekDoesNotConsume(t *testing.T) {
	c := newCursor("ab")
	ch, ok := c.peek()
	require.True(t, ok)
	require.Equal(t, 'a', ch)
	ch, ok = c.peek()
	require.True(t, ok)
	require.Equal(t, 'a', ch)
	require.Equal(t, 0, c.offset)
}

func TestCursorPeekAt(t *testing.T) {
	c := newCursor("abc")
	ch, ok := c.peekAt(2)
	require.True(t, ok)
	require.Equal(t, 'c', ch)
	_, ok = c.peekAt(3)
	require.False(t, ok)
	require.Equal(t, 0, c.offset)
}

func TestCursorAdvance(t *testing.T) {
	c := newCursor("ab")
	ch, ok := c.advance()
	require.True(t, ok)
	require.Equal(t, 'a', ch)
	require.Equal(t, Position{Offset: 1, Line: 1, Col: 2}, c.position())
	ch, ok = c.advance()
	require.True(t, ok)
	require.Equal(t, 'b', ch)
}

func TestCursorAdvanceIdempotentAtEnd(t *testing.T) {
	c := newCursor("x")
	_, ok := c.advance()
	require.True(t, ok)
	end := c.position()
	for i := 0; i < 3; i++ {
		_, ok := c.advance()
		require.False(t, ok)
		require.Equal(t, end, c.position())
	}
}

func TestCursorLineTracking(t *testing.T) {
	c := newCursor("a\nbc\n")
	require.Equal(t, Position{Offset: 0, Line: 1, Col: 1}, c.position())
	c.advance() // a
	require.Equal(t, Position{Offset: 1, Line: 1, Col: 2}, c.position())
	c.advance() // \n
	require.Equal(t, Position{Offset: 2, Line: 2, Col: 1}, c.position())
	c.advance() // b
	c.advance() // c
	require.Equal(t, Position{Offset: 4, Line: 2, Col: 3}, c.position())
	c.advance() // \n
	require.Equal(t, Position{Offset: 5, Line: 3, Col: 1}, c.position())
}

func TestCursorText(t *testing.T) {
	c := newCursor("héllo")
	for i := 0; i < 5; i++ {
		c.advance()
	}
	require.Equal(t, "éll", c.text(1, 4))
}

func TestCursorEmptyInput(t *testing.T) {
	c := newCursor("")
	_, ok := c.peek()
	require.False(t, ok)
	_, ok = c.advance()
	require.False(t, ok)
	require.Equal(t, Position{Offset: 0, Line: 1, Col: 1}, c.position())
}
