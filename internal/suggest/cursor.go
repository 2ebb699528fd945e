package suggest

import "github.com/tsnthiago/viewstats/internal/catalog"

// Cursor is the selection state of the suggestion panel. Selected ranges
// over [-1, len(suggestions)-1]; -1 means nothing selected.
type Cursor struct {
	Selected int
}

// NewCursor starts with no selection.
func NewCursor() Cursor {
	return Cursor{Selected: -1}
}

// Down moves the selection toward the last of n suggestions.
func (c Cursor) Down(n int) Cursor {
	if n == 0 {
		return Cursor{Selected: -1}
	}
	if c.Selected < n-1 {
		c.Selected++
	}
	return c
}

// Up moves the selection toward "none".
func (c Cursor) Up(int) Cursor {
	if c.Selected > -1 {
		c.Selected--
	}
	return c
}

// Escape closes the panel: the selection clears, the typed text stays.
func (c Cursor) Escape() Cursor {
	return Cursor{Selected: -1}
}

// Enter resolves the committed query: the selected suggestion when one is
// highlighted, otherwise the raw typed text. The second return reports
// whether a suggestion was committed.
func (c Cursor) Enter(suggestions []catalog.Suggestion, typed string) (string, bool) {
	if c.Selected >= 0 && c.Selected < len(suggestions) {
		return suggestions[c.Selected].Text, true
	}
	return typed, false
}
