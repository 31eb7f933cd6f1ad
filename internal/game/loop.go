// Package game drives one console minesweeper session: it owns the
// prompt/readline loop and translates the text protocol into minefield
// operations. All game rules live in the minefield package.
package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/dkarpov/minesweeper-cli/internal/minefield"
)

// MaxMines leaves at least one cell free so the first-move relocation
// always has somewhere to put the mine.
const MaxMines = minefield.Size*minefield.Size - 1

type Loop struct {
	field *minefield.Minefield
	in    *bufio.Scanner
	out   io.Writer
	log   *logrus.Entry
}

func NewLoop(
	field *minefield.Minefield,
	in io.Reader,
	out io.Writer,
	log *logrus.Entry,
) *Loop {
	return &Loop{
		field: field,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   log,
	}
}

// Run plays a single game to a terminal state. mines preseeds the mine
// count; any value outside 1..MaxMines triggers the interactive prompt
// instead. A nil error on return means the game ended in a win, a loss
// or an end of input.
func (l *Loop) Run(mines int) error {
	if mines < 1 || mines > MaxMines {
		mines = l.askMineCount()
		if mines == 0 {
			return l.in.Err()
		}
	}
	l.field.PlaceMines(mines)
	l.log.WithField("mines", mines).Info("minefield ready")

	fmt.Fprint(l.out, l.field.Render())
	for !l.field.Completed() && l.field.Survived() {
		fmt.Fprint(l.out, "Set/unset mine marks or claim a cell as free: ")
		line, ok := l.readLine()
		if !ok {
			return l.in.Err()
		}
		if line == "" {
			continue
		}
		if l.execute(line) {
			fmt.Fprint(l.out, l.field.Render())
		}
	}

	if l.field.Survived() {
		fmt.Fprintln(l.out, "Congratulations! You found all the mines!")
		l.log.Info("game won")
	} else {
		fmt.Fprintln(l.out, "You stepped on a mine and failed!")
		l.log.Info("game lost")
	}
	return nil
}

// execute applies one line of input and reports whether the board
// changed enough to re-render. Invalid commands never mutate state.
func (l *Loop) execute(line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(l.out, err)
		return false
	}
	if !l.field.InBounds(cmd.row, cmd.col) {
		fmt.Fprintf(l.out, "Coordinates must be between 1 and %d!\n",
			minefield.Size)
		return false
	}
	switch cmd.action {
	case actionMark:
		if !l.field.SetMark(cmd.row, cmd.col) {
			if l.field.Numbered(cmd.row, cmd.col) {
				fmt.Fprintln(l.out, "There is a number here!")
			} else {
				fmt.Fprintln(l.out, "This cell is already explored!")
			}
			return false
		}
		l.log.WithFields(logrus.Fields{
			"row": cmd.row, "col": cmd.col,
		}).Debug("mark toggled")
	case actionFree:
		l.field.Explore(cmd.row, cmd.col)
		l.log.WithFields(logrus.Fields{
			"row": cmd.row, "col": cmd.col,
			"explored": l.field.ExploredCells(),
		}).Debug("cell explored")
	}
	return true
}

// askMineCount prompts until it gets a valid mine count. Returns 0 when
// the input runs out.
func (l *Loop) askMineCount() int {
	for {
		fmt.Fprint(l.out, "How many mines do you want on the field? ")
		line, ok := l.readLine()
		if !ok {
			return 0
		}
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > MaxMines {
			fmt.Fprintf(l.out, "Mine count must be between 1 and %d!\n",
				MaxMines)
			continue
		}
		return n
	}
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(l.in.Text()), true
}
