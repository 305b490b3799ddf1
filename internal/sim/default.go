package sim

import "github.com/vovakirdan/snakegrid/internal/board"

// DefaultBoard is the built-in 20x18 level: one snake heading right along
// row 2 with food further down the row.
const DefaultBoard = "####################\n" +
	"#                  #\n" +
	"# d>D    *         #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"#                  #\n" +
	"####################\n"

// DefaultState returns a fresh state for DefaultBoard with its single
// snake at tail (2,2), head (4,2).
func DefaultState() *State {
	b, err := board.Parse(DefaultBoard)
	if err != nil {
		panic("sim: default board is invalid: " + err.Error())
	}
	return &State{
		Board: b,
		Snakes: []Snake{
			{HeadX: 4, HeadY: 2, TailX: 2, TailY: 2, Alive: true},
		},
	}
}
