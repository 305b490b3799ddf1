package food

import (
	"math/rand"

	"github.com/vovakirdan/snakegrid/internal/board"
	"github.com/vovakirdan/snakegrid/internal/codec"
	"github.com/vovakirdan/snakegrid/internal/sim"
)

// Policy names.
const (
	PolicyNone       = "none"
	PolicyRandom     = "random"
	PolicyFirstEmpty = "first-empty"
)

func init() {
	Register(PolicyNone, "Never place new food", func(Options) sim.FoodPlacer {
		return sim.FoodFunc(func(*sim.State) error { return nil })
	})
	Register(PolicyRandom, "Place food on a random empty cell", func(opts Options) sim.FoodPlacer {
		return NewRandom(opts.Seed)
	})
	Register(PolicyFirstEmpty, "Place food on the first empty cell in row-major order", func(Options) sim.FoodPlacer {
		return sim.FoodFunc(placeFirstEmpty)
	})
}

// Random places food on a uniformly chosen empty cell.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random placer with a deterministic seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// PlaceFood implements sim.FoodPlacer. A board without empty cells is
// left unchanged.
func (r *Random) PlaceFood(s *sim.State) error {
	cells := emptyCells(s.Board)
	if len(cells) == 0 {
		return nil
	}
	p := cells[r.rng.Intn(len(cells))]
	return s.Board.Set(p[0], p[1], codec.Food)
}

func placeFirstEmpty(s *sim.State) error {
	var (
		x, y  int
		found bool
	)
	s.Board.Scan(func(cx, cy int, c byte) bool {
		if c == codec.Empty {
			x, y, found = cx, cy, true
			return false
		}
		return true
	})
	if !found {
		return nil
	}
	return s.Board.Set(x, y, codec.Food)
}

// emptyCells collects all empty cells in row-major order.
func emptyCells(b *board.Board) [][2]int {
	var cells [][2]int
	b.Scan(func(x, y int, c byte) bool {
		if c == codec.Empty {
			cells = append(cells, [2]int{x, y})
		}
		return true
	})
	return cells
}
