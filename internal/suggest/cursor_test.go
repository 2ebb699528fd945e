package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsnthiago/viewstats/internal/catalog"
)

func TestCursorClamping(t *testing.T) {
	c := NewCursor()
	assert.Equal(t, -1, c.Selected)

	c = c.Down(2)
	assert.Equal(t, 0, c.Selected)
	c = c.Down(2)
	assert.Equal(t, 1, c.Selected)
	c = c.Down(2)
	assert.Equal(t, 1, c.Selected, "down clamps at the last suggestion")

	c = c.Up(2)
	c = c.Up(2)
	assert.Equal(t, -1, c.Selected)
	c = c.Up(2)
	assert.Equal(t, -1, c.Selected, "up clamps at none-selected")
}

func TestCursorDownOnEmptyList(t *testing.T) {
	c := NewCursor().Down(0)
	assert.Equal(t, -1, c.Selected)
}

func TestCursorEnter(t *testing.T) {
	suggestions := []catalog.Suggestion{
		{Text: "machine learning"},
		{Text: "machine vision"},
	}

	q, committed := NewCursor().Enter(suggestions, "mach")
	assert.False(t, committed)
	assert.Equal(t, "mach", q, "enter with no selection submits the raw text")

	q, committed = NewCursor().Down(2).Down(2).Enter(suggestions, "mach")
	assert.True(t, committed)
	assert.Equal(t, "machine vision", q)
}

func TestCursorEscape(t *testing.T) {
	c := NewCursor().Down(3).Escape()
	assert.Equal(t, -1, c.Selected)
}
