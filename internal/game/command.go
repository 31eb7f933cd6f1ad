package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type action int

const (
	actionMark action = iota
	actionFree
)

// command is one parsed player instruction, already converted to the
// engine's 0-based row/col indices.
type command struct {
	action   action
	row, col int
}

var errUsage = errors.New("expected: <column> <row> mine|free")

// Maps known keywords to actions
var keywords = map[string]action{
	"mine": actionMark,
	"free": actionFree,
}

// parseCommand reads the `x y keyword` protocol. x is a 1-based column
// and y a 1-based row; the historical protocol leads with the column,
// so the conversion swaps them into (row, col).
func parseCommand(line string) (command, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return command{}, errUsage
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return command{}, errors.New("first argument must be an int")
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return command{}, errors.New("second argument must be an int")
	}
	a, ok := keywords[parts[2]]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q", parts[2])
	}
	return command{action: a, row: y - 1, col: x - 1}, nil
}
