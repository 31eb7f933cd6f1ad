package minefield

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Size is the board edge length. The game is played on a fixed
// Size x Size grid.
const Size = 9

type Cell struct {
	Mined       bool
	NearbyMines int
	Marked      bool
	Explored    bool
}

// Minefield owns the grid and its aggregate counters. Counters are
// maintained incrementally by the mutating operations, never recomputed
// by scanning. All cell access goes through methods; no raw cell
// handles leave this package.
type Minefield struct {
	cells [Size * Size]Cell
	r     *rand.Rand

	mineCount     int
	exploredCells int
	correctMarks  int
	wrongMarks    int
	survived      bool
}

func New(r *rand.Rand) *Minefield {
	return &Minefield{r: r, survived: true}
}

func (f *Minefield) at(row, col int) *Cell {
	return &f.cells[row*Size+col]
}

func (f *Minefield) InBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

func (f *Minefield) MineCount() int     { return f.mineCount }
func (f *Minefield) ExploredCells() int { return f.exploredCells }
func (f *Minefield) Survived() bool     { return f.survived }

// Mined reports whether a mine sits at (row, col). Read-only, for
// collaborators that inspect the grid after the game ends.
func (f *Minefield) Mined(row, col int) bool {
	return f.at(row, col).Mined
}

// Numbered reports whether the cell shows a neighbor-mine digit.
// Only explored cells show digits.
func (f *Minefield) Numbered(row, col int) bool {
	c := f.at(row, col)
	return c.Explored && c.NearbyMines > 0
}

// PlaceMines buries count mines, one at a time, each on a uniformly
// sampled cell that is still empty. count must leave at least one cell
// free or placement will spin forever; the caller owns that contract.
func (f *Minefield) PlaceMines(count int) {
	for range count {
		f.placeMine()
	}
}

func (f *Minefield) placeMine() {
	for {
		row, col := f.r.IntN(Size), f.r.IntN(Size)
		if f.at(row, col).Mined {
			continue
		}
		f.placeMineAt(row, col)
		return
	}
}

func (f *Minefield) placeMineAt(row, col int) {
	cell := f.at(row, col)
	cell.Mined = true
	f.mineCount++
	if cell.Marked {
		f.wrongMarks--
		f.correctMarks++
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if f.InBounds(rr, cc) {
				f.at(rr, cc).NearbyMines++
			}
		}
	}
}

// clearMine lifts the mine at (row, col). A call without a mine present
// is a sequencing bug in this package, not a user-facing error.
func (f *Minefield) clearMine(row, col int) {
	cell := f.at(row, col)
	if !cell.Mined {
		panic(AssertionError{"no mine to clear"})
	}
	cell.Mined = false
	f.mineCount--
	if cell.Marked {
		f.correctMarks--
		f.wrongMarks++
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if f.InBounds(rr, cc) {
				f.at(rr, cc).NearbyMines--
			}
		}
	}
}

// SetMark toggles the mine mark on an unexplored cell and reports
// whether the toggle happened. Explored cells reject marking.
func (f *Minefield) SetMark(row, col int) bool {
	cell := f.at(row, col)
	if cell.Explored {
		return false
	}
	if cell.Marked {
		cell.Marked = false
		if cell.Mined {
			f.correctMarks--
		} else {
			f.wrongMarks--
		}
	} else {
		cell.Marked = true
		if cell.Mined {
			f.correctMarks++
		} else {
			f.wrongMarks++
		}
	}
	return true
}

// Explore opens the cell at (row, col) and auto-explores outward from
// it. Hitting a mine on the very first exploration relocates the mine
// instead of killing the player; any later mine hit reveals the whole
// minefield and ends the game.
func (f *Minefield) Explore(row, col int) {
	if !f.survived {
		return
	}
	cell := f.at(row, col)
	if cell.Mined {
		if f.exploredCells > 0 {
			f.revealMines()
			f.survived = false
			Log.WithFields(logrus.Fields{
				"row": row, "col": col,
			}).Debug("stepped on a mine")
			return
		}
		for cell.Mined {
			f.clearMine(row, col)
			f.placeMine()
		}
		Log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Debug("relocated mine away from first move")
	}
	f.floodExplore(row, col)
}

// revealMines exposes every mined cell. Revealed mines do not count as
// explored cells and do not trigger flood fill.
func (f *Minefield) revealMines() {
	for i := range f.cells {
		if f.cells[i].Mined {
			f.cells[i].Explored = true
		}
	}
}

// floodExplore opens (row, col) and keeps opening neighbors of
// zero-neighbor cells. The Explored flag gates re-entry, so every cell
// is processed at most once and the walk terminates.
func (f *Minefield) floodExplore(row, col int) {
	type point struct{ row, col int }
	stack := []point{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cell := f.at(p.row, p.col)
		if cell.Explored {
			continue
		}
		cell.Explored = true
		f.exploredCells++
		if cell.Marked {
			/* an opened cell cannot stay flagged, and only safe
			 * cells ever get opened here */
			cell.Marked = false
			f.wrongMarks--
		}
		if cell.NearbyMines > 0 {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				rr, cc := p.row+dr, p.col+dc
				if f.InBounds(rr, cc) && !f.at(rr, cc).Explored {
					stack = append(stack, point{rr, cc})
				}
			}
		}
	}
}

// Completed reports whether the game is won: either all mines and only
// mines carry marks, or every safe cell has been explored.
func (f *Minefield) Completed() bool {
	return (f.correctMarks == f.mineCount && f.wrongMarks == 0) ||
		f.exploredCells == Size*Size-f.mineCount
}
