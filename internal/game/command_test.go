package game

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  command
		bad   bool
	}{
		{input: "3 5 mine", want: command{action: actionMark, row: 4, col: 2}},
		{input: "1 1 free", want: command{action: actionFree, row: 0, col: 0}},
		{input: "9 1 free", want: command{action: actionFree, row: 0, col: 8}},
		{input: "  4  2  mine ", want: command{action: actionMark, row: 1, col: 3}},
		{input: "3 5 bomb", bad: true},
		{input: "x 5 free", bad: true},
		{input: "3 y free", bad: true},
		{input: "3 free", bad: true},
		{input: "3 5 mine extra", bad: true},
		{input: "", bad: true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := parseCommand(test.input)
			if test.bad {
				if err == nil {
					t.Errorf("parseCommand(%q) should fail", test.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCommand(%q): %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("parseCommand(%q) = %+v, want %+v",
					test.input, got, test.want)
			}
		})
	}
}
