package board

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for cell access outside the grid.
	ErrOutOfBounds = errors.New("board: out of bounds")

	// ErrIllegalCharacter is returned when a board contains a byte outside
	// the alphabet.
	ErrIllegalCharacter = errors.New("board: illegal character")
)

// OutOfBoundsError describes a rejected cell access.
type OutOfBoundsError struct {
	X, Y   int
	Width  int // Width of row Y, or -1 when Y itself is out of range
	Height int
}

func (e *OutOfBoundsError) Error() string {
	if e.Width < 0 {
		return fmt.Sprintf("[OUT_OF_BOUNDS] row %d outside board of %d rows", e.Y, e.Height)
	}
	return fmt.Sprintf("[OUT_OF_BOUNDS] column %d outside row %d of width %d", e.X, e.Y, e.Width)
}

// Code returns the stable error code.
func (e *OutOfBoundsError) Code() string { return "OUT_OF_BOUNDS" }

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// IllegalCharacterError names the first illegal byte found while parsing.
type IllegalCharacterError struct {
	X, Y int
	Char byte
}

func (e *IllegalCharacterError) Error() string {
	return fmt.Sprintf("[ILLEGAL_CHARACTER] %q at (%d,%d)", e.Char, e.X, e.Y)
}

// Code returns the stable error code.
func (e *IllegalCharacterError) Code() string { return "ILLEGAL_CHARACTER" }

func (e *IllegalCharacterError) Unwrap() error { return ErrIllegalCharacter }
