package minefield

import (
	"strings"
	"testing"
)

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"covered", Cell{}, "."},
		{"marked", Cell{Marked: true}, "*"},
		{"covered mine", Cell{Mined: true}, "."},
		{"marked mine", Cell{Mined: true, Marked: true}, "*"},
		{"explored blank", Cell{Explored: true}, "/"},
		{"explored numbered", Cell{Explored: true, NearbyMines: 3}, "3"},
		{"revealed mine", Cell{Explored: true, Mined: true}, "X"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.cell.String(); got != test.want {
				t.Errorf("glyph %q, want %q", got, test.want)
			}
		})
	}
}

func TestRenderFreshBoard(t *testing.T) {
	f := newTestField(30)
	want := strings.Join([]string{
		" |123456789|",
		"-|---------|",
		"1|.........|",
		"2|.........|",
		"3|.........|",
		"4|.........|",
		"5|.........|",
		"6|.........|",
		"7|.........|",
		"8|.........|",
		"9|.........|",
		"-|---------|",
		"",
	}, "\n")
	if got := f.Render(); got != want {
		t.Errorf("fresh board rendered as\n%s\nwant\n%s", got, want)
	}
}

func TestRenderProjectsState(t *testing.T) {
	f := newTestField(31)
	f.placeMineAt(0, 0)
	f.SetMark(0, 0)
	f.Explore(8, 8)

	got := f.Render()
	rows := strings.Split(got, "\n")

	if rows[2] != "1|*1///////|" {
		t.Errorf("row 1 rendered as %q", rows[2])
	}
	if rows[10] != "9|/////////|" {
		t.Errorf("row 9 rendered as %q", rows[10])
	}
	if before := f.Render(); before != got {
		t.Error("render must be side-effect free")
	}
}

func TestRenderRevealedMines(t *testing.T) {
	f := newTestField(32)
	f.placeMineAt(0, 0)
	f.placeMineAt(5, 5)

	f.Explore(0, 1)
	f.Explore(5, 5)

	if f.Survived() {
		t.Fatal("expected a lost game")
	}
	if got := strings.Count(f.Render(), "X"); got != 2 {
		t.Errorf("%d mines revealed, want 2", got)
	}
}
