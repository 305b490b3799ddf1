package sim

// Snapshot captures the complete simulation state for determinism testing
// and the run journal.
type Snapshot struct {
	Tick   uint64
	Snakes []Snake
	Alive  int
	Board  string
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	snakes := make([]Snake, len(s.Snakes))
	copy(snakes, s.Snakes)
	return Snapshot{
		Tick:   s.tick,
		Snakes: snakes,
		Alive:  s.AliveCount(),
		Board:  s.Board.Serialize(),
	}
}

// Equal returns true if both snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Tick != b.Tick || a.Alive != b.Alive || a.Board != b.Board {
		return false
	}
	if len(a.Snakes) != len(b.Snakes) {
		return false
	}
	for i := range a.Snakes {
		if a.Snakes[i] != b.Snakes[i] {
			return false
		}
	}
	return true
}
