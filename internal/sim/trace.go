package sim

import (
	"github.com/vovakirdan/snakegrid/internal/board"
	"github.com/vovakirdan/snakegrid/internal/codec"
)

// TraceHead follows the direction-chain that starts at the tail cell
// (tailX, tailY) and returns the coordinate of the head it ends on.
// The board is not modified.
//
// The walk fails with a *ChainError when the start cell is not a tail,
// when a link is neither a body nor a head character, when a link leaves
// the board, or when it visits more cells than the board holds.
func TraceHead(b *board.Board, tailX, tailY int) (int, int, error) {
	x, y := tailX, tailY
	c, err := b.Get(x, y)
	if err != nil {
		return 0, 0, &ChainError{X: x, Y: y, Reason: "tail off board", Err: err}
	}
	if !codec.IsTail(c) {
		return 0, 0, &ChainError{X: x, Y: y, Char: c, Reason: "expected tail character"}
	}

	limit := b.Cells()
	for steps := 0; !codec.IsHead(c); steps++ {
		if steps >= limit {
			return 0, 0, &ChainError{X: x, Y: y, Char: c, Reason: "chain does not terminate"}
		}

		x, y = codec.NextX(x, c), codec.NextY(y, c)
		c, err = b.Get(x, y)
		if err != nil {
			return 0, 0, &ChainError{X: x, Y: y, Reason: "chain leaves board", Err: err}
		}
		if !codec.IsBody(c) && !codec.IsHead(c) {
			return 0, 0, &ChainError{X: x, Y: y, Char: c, Reason: "chain broken"}
		}
	}

	return x, y, nil
}
