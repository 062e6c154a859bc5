package game

import "fmt"

// Position is a board coordinate, column first.
type Position struct {
	Col int
	Row int
}

func NewPosition(col, row int) (Position, error) {
	p := Position{Col: col, Row: row}
	if !p.Valid() {
		return Position{}, fmt.Errorf("(%d, %d): %w", col, row, ErrInvalidPosition)
	}
	return p, nil
}

func (p Position) Valid() bool {
	return inBounds(p.Col) && inBounds(p.Row)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

func inBounds(i int) bool {
	return i >= 0 && i < Size
}

// IsCapture reports whether moving from one position to another jumps a piece.
// Any move spanning more than one row counts as a capture.
func IsCapture(from, to Position) bool {
	return abs(to.Row-from.Row) > 1
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Piece is a checker owned by one side's roster.
type Piece struct {
	Color    Side
	Position Position
	Crowned  bool
}

func NewPiece(color Side, position Position) (*Piece, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("%d: %w", color, ErrInvalidColor)
	}
	if !position.Valid() {
		return nil, fmt.Errorf("%v: %w", position, ErrInvalidPosition)
	}
	return &Piece{Color: color, Position: position}, nil
}

// Advancement counts the rows the piece has travelled from its home edge.
func (p *Piece) Advancement() int {
	return Size - 1 - abs(p.Position.Row-p.Color.KingRow())
}

// directions returns the row steps the piece may move along.
func (p *Piece) directions() []int {
	forward := p.Color.Direction()
	if p.Crowned {
		return []int{forward, -forward}
	}
	return []int{forward}
}

// Cell is a square of the grid. It references at most one piece.
type Cell struct {
	position    Position
	piece       *Piece
	Highlighted bool // Only meaningful to the presentation layer
}

func NewCell(position Position) (*Cell, error) {
	if !position.Valid() {
		return nil, fmt.Errorf("%v: %w", position, ErrInvalidPosition)
	}
	return &Cell{position: position}, nil
}

func (c *Cell) Position() Position {
	return c.position
}

// Piece returns a copy of the occupying piece, if any.
func (c *Cell) Piece() (Piece, bool) {
	if c.piece == nil {
		return Piece{}, false
	}
	return *c.piece, true
}

func (c *Cell) Empty() bool {
	return c.piece == nil
}
