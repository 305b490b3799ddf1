// Package board provides the mutable character grid a simulation runs on.
// Rows are stored without their terminating newline and may differ in
// length; every access is checked against the row it touches.
package board

import (
	"strings"

	"github.com/vovakirdan/snakegrid/internal/codec"
)

// Board is a grid of cell characters stored row by row.
type Board struct {
	rows [][]byte
}

// New creates a board from rows given without newlines.
// The rows are copied and not validated.
func New(rows []string) *Board {
	b := &Board{rows: make([][]byte, len(rows))}
	for y, row := range rows {
		b.rows[y] = []byte(row)
	}
	return b
}

// Parse builds a board from its text form. Each newline-terminated line
// becomes one row, kept verbatim; text after the last newline is ignored.
// Every byte must belong to the board alphabet.
func Parse(text string) (*Board, error) {
	lines := strings.SplitAfter(text, "\n")
	rows := make([][]byte, 0, len(lines))
	for _, line := range lines {
		if !strings.HasSuffix(line, "\n") {
			break
		}
		rows = append(rows, []byte(strings.TrimSuffix(line, "\n")))
	}

	for y, row := range rows {
		for x, c := range row {
			if !codec.IsValid(c) {
				return nil, &IllegalCharacterError{X: x, Y: y, Char: c}
			}
		}
	}

	return &Board{rows: rows}, nil
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return len(b.rows)
}

// Width returns the stored length of row y, or 0 if y is out of range.
func (b *Board) Width(y int) int {
	if y < 0 || y >= len(b.rows) {
		return 0
	}
	return len(b.rows[y])
}

// InBounds returns true if (x, y) addresses a stored cell.
func (b *Board) InBounds(x, y int) bool {
	return y >= 0 && y < len(b.rows) && x >= 0 && x < len(b.rows[y])
}

// check returns the error describing why (x, y) is not addressable.
func (b *Board) check(x, y int) error {
	if y < 0 || y >= len(b.rows) {
		return &OutOfBoundsError{X: x, Y: y, Width: -1, Height: len(b.rows)}
	}
	if x < 0 || x >= len(b.rows[y]) {
		return &OutOfBoundsError{X: x, Y: y, Width: len(b.rows[y]), Height: len(b.rows)}
	}
	return nil
}

// Get returns the character at (x, y).
func (b *Board) Get(x, y int) (byte, error) {
	if err := b.check(x, y); err != nil {
		return 0, err
	}
	return b.rows[y][x], nil
}

// Set overwrites the character at (x, y). The character is not checked
// against the alphabet.
func (b *Board) Set(x, y int, ch byte) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.rows[y][x] = ch
	return nil
}

// Serialize returns the board as text, every row followed by a newline.
func (b *Board) Serialize() string {
	var sb strings.Builder
	size := 0
	for _, row := range b.rows {
		size += len(row) + 1
	}
	sb.Grow(size)

	for _, row := range b.rows {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (b *Board) String() string {
	return b.Serialize()
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	rows := make([][]byte, len(b.rows))
	for y, row := range b.rows {
		rows[y] = append([]byte(nil), row...)
	}
	return &Board{rows: rows}
}

// Equal returns true if both boards hold the same rows.
func (b *Board) Equal(other *Board) bool {
	if len(b.rows) != len(other.rows) {
		return false
	}
	for y := range b.rows {
		if string(b.rows[y]) != string(other.rows[y]) {
			return false
		}
	}
	return true
}

// Count returns how many cells hold ch.
func (b *Board) Count(ch byte) int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c == ch {
				n++
			}
		}
	}
	return n
}

// Cells returns the number of stored cells.
func (b *Board) Cells() int {
	n := 0
	for _, row := range b.rows {
		n += len(row)
	}
	return n
}

// Scan calls fn for every cell in row-major order until fn returns false.
func (b *Board) Scan(fn func(x, y int, c byte) bool) {
	for y, row := range b.rows {
		for x, c := range row {
			if !fn(x, y, c) {
				return
			}
		}
	}
}
