package minefield

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the single glyph a cell shows on the board.
func (c Cell) String() string {
	switch {
	case c.Explored && c.Mined:
		return "X"
	case c.Explored && c.NearbyMines == 0:
		return "/"
	case c.Explored:
		return strconv.Itoa(c.NearbyMines)
	case c.Marked:
		return "*"
	default:
		return "."
	}
}

// Render projects the grid into its console form, 1-based column
// headers and row labels included. Read-only; calling it never changes
// game state.
func (f *Minefield) Render() string {
	var b strings.Builder
	b.WriteString(" |")
	for col := range Size {
		fmt.Fprint(&b, col+1)
	}
	b.WriteString("|\n")
	b.WriteString("-|" + strings.Repeat("-", Size) + "|\n")
	for row := range Size {
		fmt.Fprintf(&b, "%d|", row+1)
		for col := range Size {
			b.WriteString(f.at(row, col).String())
		}
		b.WriteString("|\n")
	}
	b.WriteString("-|" + strings.Repeat("-", Size) + "|\n")
	return b.String()
}
