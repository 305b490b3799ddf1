// Package sim runs snakes on a board. Snakes are not stored as segment
// lists: the registry only knows each snake's head and tail, and the
// cells in between are recovered from the direction characters on the
// board.
package sim

import (
	"fmt"

	"github.com/vovakirdan/snakegrid/internal/board"
)

// State is a board together with the snakes living on it.
type State struct {
	Board  *board.Board
	Snakes []Snake
	tick   uint64
}

// NewState discovers the snakes on b and returns a state owning b.
func NewState(b *board.Board) (*State, error) {
	snakes, err := InitializeSnakes(b)
	if err != nil {
		return nil, fmt.Errorf("initializing snakes: %w", err)
	}
	return &State{Board: b, Snakes: snakes}, nil
}

// Tick returns the number of completed steps.
func (s *State) Tick() uint64 {
	return s.tick
}

// AliveCount returns the number of live snakes.
func (s *State) AliveCount() int {
	n := 0
	for _, sn := range s.Snakes {
		if sn.Alive {
			n++
		}
	}
	return n
}

// Save returns the board text. Snake descriptors are not persisted; they
// are rebuilt from the board by Load.
func (s *State) Save() string {
	return s.Board.Serialize()
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	snakes := make([]Snake, len(s.Snakes))
	copy(snakes, s.Snakes)
	return &State{Board: s.Board.Clone(), Snakes: snakes, tick: s.tick}
}
