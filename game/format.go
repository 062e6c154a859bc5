package game

import (
	"fmt"
	"strings"
)

func symbol(p *Piece) byte {
	switch {
	case p == nil:
		return '.'
	case p.Color == Black && p.Crowned:
		return 'B'
	case p.Color == Black:
		return 'b'
	case p.Crowned:
		return 'R'
	default:
		return 'r'
	}
}

// ParseBoard reads a diagram of Size rows, row 0 first, using b/B for black
// pieces and kings, r/R for red ones and . for empty squares. Whitespace
// inside a row is ignored.
func ParseBoard(diagram string, turn Side) (*Board, error) {
	if !turn.Valid() {
		return nil, fmt.Errorf("turn %d: %w", turn, ErrInvalidColor)
	}

	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != Size {
		return nil, fmt.Errorf("diagram has %d rows, want %d", len(rows), Size)
	}

	b := NewBoard(NoSide, false)
	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("row %d has %d squares, want %d", row, len(line), Size)
		}
		for col := 0; col < Size; col++ {
			var err error
			position := Position{Col: col, Row: row}
			switch line[col] {
			case '.', '-':
				continue
			case 'b':
				err = b.Place(Black, position, false)
			case 'B':
				err = b.Place(Black, position, true)
			case 'r':
				err = b.Place(Red, position, false)
			case 'R':
				err = b.Place(Red, position, true)
			default:
				err = fmt.Errorf("unknown square %q at %v", line[col], position)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	b.SetTurn(turn)
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(diagram string, turn Side) *Board {
	b, err := ParseBoard(diagram, turn)
	if err != nil {
		panic(err)
	}
	return b
}
