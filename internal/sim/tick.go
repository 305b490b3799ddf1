package sim

import (
	"fmt"

	"github.com/vovakirdan/snakegrid/internal/codec"
)

// FoodPlacer is called once each time a snake eats. It may modify the
// board, typically by writing a new food cell.
type FoodPlacer interface {
	PlaceFood(s *State) error
}

// FoodFunc adapts a function to FoodPlacer.
type FoodFunc func(s *State) error

// PlaceFood calls f(s).
func (f FoodFunc) PlaceFood(s *State) error {
	return f(s)
}

// StepReport lists the snake indices affected by one step.
type StepReport struct {
	Moved []int // Advanced onto an empty cell
	Ate   []int // Advanced onto food and grew
	Died  []int // Collided this step
}

// Step advances every live snake by one cell. See StepWithReport.
func (s *State) Step(food FoodPlacer) error {
	_, err := s.StepWithReport(food)
	return err
}

// StepWithReport advances every live snake by one cell, in registry order.
// Each snake sees the board as left by the snakes before it in the same
// step. A snake moving onto food grows and triggers food; a snake moving
// onto anything other than food or an empty cell dies in place.
//
// An error means the board is malformed or the food placer failed; the
// step stops at the offending snake.
func (s *State) StepWithReport(food FoodPlacer) (StepReport, error) {
	var report StepReport

	for i := range s.Snakes {
		if !s.Snakes[i].Alive {
			continue
		}

		next, err := s.nextSquare(i)
		if err != nil {
			return report, fmt.Errorf("snake %d: %w", i, err)
		}

		switch next {
		case codec.Food:
			if err := s.updateHead(i); err != nil {
				return report, fmt.Errorf("snake %d: %w", i, err)
			}
			report.Ate = append(report.Ate, i)
			if food != nil {
				if err := food.PlaceFood(s); err != nil {
					return report, fmt.Errorf("placing food: %w", err)
				}
			}
		case codec.Empty:
			if err := s.updateHead(i); err != nil {
				return report, fmt.Errorf("snake %d: %w", i, err)
			}
			if err := s.updateTail(i); err != nil {
				return report, fmt.Errorf("snake %d: %w", i, err)
			}
			report.Moved = append(report.Moved, i)
		default:
			sn := &s.Snakes[i]
			sn.Alive = false
			if err := s.Board.Set(sn.HeadX, sn.HeadY, codec.Dead); err != nil {
				return report, fmt.Errorf("snake %d: %w", i, err)
			}
			report.Died = append(report.Died, i)
		}
	}

	s.tick++
	return report, nil
}

// nextSquare returns the character the head of snake i is about to enter.
func (s *State) nextSquare(i int) (byte, error) {
	sn := s.Snakes[i]
	h, err := s.Board.Get(sn.HeadX, sn.HeadY)
	if err != nil {
		return 0, err
	}
	return s.Board.Get(codec.NextX(sn.HeadX, h), codec.NextY(sn.HeadY, h))
}

// updateHead moves the head of snake i one cell forward. The old head cell
// becomes a body segment and the new cell inherits the head character.
func (s *State) updateHead(i int) error {
	sn := &s.Snakes[i]
	h, err := s.Board.Get(sn.HeadX, sn.HeadY)
	if err != nil {
		return err
	}
	body := codec.HeadToBody(h)
	if body == codec.Invalid {
		return &ChainError{X: sn.HeadX, Y: sn.HeadY, Char: h, Reason: "expected live head character"}
	}

	nx, ny := codec.NextX(sn.HeadX, h), codec.NextY(sn.HeadY, h)
	if err := s.Board.Set(nx, ny, h); err != nil {
		return err
	}
	// Cannot fail: the cell was just read.
	_ = s.Board.Set(sn.HeadX, sn.HeadY, body)

	sn.HeadX, sn.HeadY = nx, ny
	return nil
}

// updateTail blanks the tail of snake i and turns the following body
// segment into the new tail.
func (s *State) updateTail(i int) error {
	sn := &s.Snakes[i]
	t, err := s.Board.Get(sn.TailX, sn.TailY)
	if err != nil {
		return err
	}
	if !codec.IsTail(t) {
		return &ChainError{X: sn.TailX, Y: sn.TailY, Char: t, Reason: "expected tail character"}
	}

	nx, ny := codec.NextX(sn.TailX, t), codec.NextY(sn.TailY, t)
	c, err := s.Board.Get(nx, ny)
	if err != nil {
		return &ChainError{X: nx, Y: ny, Reason: "chain leaves board", Err: err}
	}
	tail := codec.BodyToTail(c)
	if tail == codec.Invalid {
		return &ChainError{X: nx, Y: ny, Char: c, Reason: "expected body character after tail"}
	}

	_ = s.Board.Set(sn.TailX, sn.TailY, codec.Empty)
	_ = s.Board.Set(nx, ny, tail)

	sn.TailX, sn.TailY = nx, ny
	return nil
}
