package sim

import (
	"fmt"

	"github.com/vovakirdan/snakegrid/internal/board"
	"github.com/vovakirdan/snakegrid/internal/codec"
)

// Snake describes one snake by its two end cells. Everything in between
// lives only on the board.
type Snake struct {
	HeadX, HeadY int
	TailX, TailY int
	Alive        bool
}

// Len walks the snake from tail to head and returns the number of cells
// it occupies.
func (s Snake) Len(b *board.Board) (int, error) {
	x, y := s.TailX, s.TailY
	n := 1
	limit := b.Cells()
	for x != s.HeadX || y != s.HeadY {
		if n > limit {
			return 0, &ChainError{X: x, Y: y, Reason: "chain does not reach head"}
		}
		c, err := b.Get(x, y)
		if err != nil {
			return 0, &ChainError{X: x, Y: y, Reason: "chain leaves board", Err: err}
		}
		if !codec.IsDirectional(c) {
			return 0, &ChainError{X: x, Y: y, Char: c, Reason: "chain broken"}
		}
		x, y = codec.NextX(x, c), codec.NextY(y, c)
		n++
	}
	return n, nil
}

// String returns a compact description used in logs.
func (s Snake) String() string {
	state := "alive"
	if !s.Alive {
		state = "dead"
	}
	return fmt.Sprintf("tail=(%d,%d) head=(%d,%d) %s", s.TailX, s.TailY, s.HeadX, s.HeadY, state)
}

// InitializeSnakes discovers every snake on the board. Tails are collected
// in row-major order, which fixes each snake's index, and each tail is
// then traced to its head. All snakes start alive.
func InitializeSnakes(b *board.Board) ([]Snake, error) {
	var snakes []Snake
	b.Scan(func(x, y int, c byte) bool {
		if codec.IsTail(c) {
			snakes = append(snakes, Snake{TailX: x, TailY: y, Alive: true})
		}
		return true
	})

	for i := range snakes {
		hx, hy, err := TraceHead(b, snakes[i].TailX, snakes[i].TailY)
		if err != nil {
			return nil, fmt.Errorf("snake %d: %w", i, err)
		}
		snakes[i].HeadX = hx
		snakes[i].HeadY = hy
	}

	return snakes, nil
}
