package sim

import (
	"errors"
	"fmt"
)

// ErrMalformedChain is returned when the cells of a snake do not form a
// direction-chain from a tail to exactly one head.
var ErrMalformedChain = errors.New("sim: malformed chain")

// ChainError describes where a direction-chain broke.
type ChainError struct {
	X, Y   int  // Cell at which the walk failed
	Char   byte // Character found there (0 when the cell is off the board)
	Reason string
	Err    error // Underlying board error, if any
}

func (e *ChainError) Error() string {
	msg := fmt.Sprintf("[MALFORMED_CHAIN] %s at (%d,%d)", e.Reason, e.X, e.Y)
	if e.Char != 0 {
		msg += fmt.Sprintf(" (found %q)", e.Char)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Code returns the stable error code.
func (e *ChainError) Code() string { return "MALFORMED_CHAIN" }

// Unwrap exposes both ErrMalformedChain and the underlying board error.
func (e *ChainError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedChain, e.Err}
	}
	return []error{ErrMalformedChain}
}
