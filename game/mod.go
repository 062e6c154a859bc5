package game

import "checkers/meta"

const Size = meta.BOARD_SIZE

// Side is one of the two competing colors.
type Side int

const (
	NoSide Side = iota - 1
	Black       // Moves first, towards row 0
	Red         // Moves towards the last row
)

func (s Side) Valid() bool {
	return s == Black || s == Red
}

func (s Side) Opponent() Side {
	switch s {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return NoSide
	}
}

// Direction is the row step of a forward move.
func (s Side) Direction() int {
	if s == Black {
		return -1
	}
	return 1
}

// KingRow is the far edge row where the side's pieces are crowned.
func (s Side) KingRow() int {
	if s == Black {
		return 0
	}
	return Size - 1
}

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// Evaluates a board to a score where higher values favor Black and lower
// values favor Red, regardless of whose turn it is.
type Evaluate func(*Board) int
