// Package codec defines the board alphabet and the meaning of every cell
// character. A snake is never stored as a list of segments: each cell it
// occupies carries a direction character, and the functions here are the
// only place those characters are turned into coordinate offsets.
package codec

// Board alphabet.
const (
	Wall  byte = '#'
	Empty byte = ' '
	Food  byte = '*'
	Dead  byte = 'x' // Head of a snake that has collided

	// Invalid is returned by the conversion helpers for inputs outside
	// their domain. It is never a legal cell value.
	Invalid byte = '?'
)

const (
	tailChars = "wasd"
	headChars = "WASDx"
	bodyChars = "^<v>"
)

// IsTail reports whether c marks the rear cell of a snake.
func IsTail(c byte) bool {
	return contains(tailChars, c)
}

// IsHead reports whether c marks the front cell of a snake.
// The dead marker counts as a head.
func IsHead(c byte) bool {
	return contains(headChars, c)
}

// IsBody reports whether c marks an interior segment.
func IsBody(c byte) bool {
	return contains(bodyChars, c)
}

// IsSnake reports whether c belongs to any snake.
func IsSnake(c byte) bool {
	return IsTail(c) || IsHead(c) || IsBody(c)
}

// IsValid reports whether c may appear on a board.
func IsValid(c byte) bool {
	return c == Wall || c == Empty || c == Food || IsSnake(c)
}

// BodyToTail converts a body character into the tail character pointing the
// same way. Returns Invalid for anything else.
func BodyToTail(c byte) byte {
	switch c {
	case '^':
		return 'w'
	case '<':
		return 'a'
	case 'v':
		return 's'
	case '>':
		return 'd'
	}
	return Invalid
}

// HeadToBody converts a live head character into the body character
// pointing the same way. Returns Invalid for anything else, including Dead.
func HeadToBody(c byte) byte {
	switch c {
	case 'W':
		return '^'
	case 'A':
		return '<'
	case 'S':
		return 'v'
	case 'D':
		return '>'
	}
	return Invalid
}

// NextX returns the column reached by moving one step from x in the
// direction of c. Characters without a horizontal component leave x as is.
func NextX(x int, c byte) int {
	switch c {
	case '>', 'd', 'D':
		return x + 1
	case '<', 'a', 'A':
		return x - 1
	}
	return x
}

// NextY returns the row reached by moving one step from y in the direction
// of c. Row 0 is the top of the board, so "up" decreases y.
func NextY(y int, c byte) int {
	switch c {
	case '^', 'w', 'W':
		return y - 1
	case 'v', 's', 'S':
		return y + 1
	}
	return y
}

// IsDirectional reports whether c moves a coordinate under NextX/NextY.
func IsDirectional(c byte) bool {
	return c != Dead && IsSnake(c)
}

func contains(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}
