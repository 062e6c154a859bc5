package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"checkers/utils"
)

type StateHash uint64

// Board is the game state: the grid, both rosters, whose turn it is and the
// legal moves of the side to move.
//
// moves is parallel to the active roster: moves[i] holds the destinations of
// pieces[turn][i].
type Board struct {
	cells  [Size][Size]Cell // Indexed by row, then column
	pieces [2][]*Piece
	turn   Side
	player Side // The human side, kept for the presentation layer
	moves  [][]Position
}

// NewBoard returns a board with Black to move. With setup the standard
// starting position is placed, otherwise the board is empty.
func NewBoard(player Side, setup bool) *Board {
	b := &Board{turn: Black, player: player}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.cells[row][col].position = Position{Col: col, Row: row}
		}
	}

	if setup {
		// Black starts on the bottom three rows
		for row := Size - 3; row < Size; row++ {
			for col := row % 2; col < Size; col += 2 {
				b.place(&Piece{Color: Black, Position: Position{Col: col, Row: row}})
			}
		}
		// Red starts on the top three rows
		for row := 0; row < 3; row++ {
			for col := row % 2; col < Size; col += 2 {
				b.place(&Piece{Color: Red, Position: Position{Col: col, Row: row}})
			}
		}
	}

	b.Recompute()
	return b
}

// Place adds a piece to a board under construction. Call Recompute once all
// pieces are placed.
func (b *Board) Place(color Side, position Position, crowned bool) error {
	piece, err := NewPiece(color, position)
	if err != nil {
		return err
	}
	if !b.cellAt(position).Empty() {
		return fmt.Errorf("%v: %w", position, ErrOccupied)
	}
	piece.Crowned = crowned
	b.place(piece)
	return nil
}

func (b *Board) place(piece *Piece) {
	b.cellAt(piece.Position).piece = piece
	b.pieces[piece.Color] = append(b.pieces[piece.Color], piece)
}

// SetTurn changes the side to move and recomputes its legal moves.
func (b *Board) SetTurn(side Side) {
	b.turn = side
	b.Recompute()
}

// Recompute refreshes the legal move set for the side to move.
func (b *Board) Recompute() {
	b.moves = b.LegalMoves()
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) Player() Side {
	return b.player
}

// Moves returns the current legal move set, parallel to Pieces(Turn()).
func (b *Board) Moves() [][]Position {
	return b.moves
}

// Pieces returns copies of a side's roster in roster order.
func (b *Board) Pieces(side Side) []Piece {
	pieces := make([]Piece, len(b.pieces[side]))
	for i, p := range b.pieces[side] {
		pieces[i] = *p
	}
	return pieces
}

func (b *Board) Count(side Side) int {
	return len(b.pieces[side])
}

func (b *Board) Cell(position Position) *Cell {
	return b.cellAt(position)
}

func (b *Board) cellAt(position Position) *Cell {
	return &b.cells[position.Row][position.Col]
}

// IndexOf finds the roster index of the active side's piece at position.
func (b *Board) IndexOf(position Position) int {
	piece := b.cellAt(position).piece
	if piece == nil {
		return -1
	}
	return utils.FindIndex(b.pieces[b.turn], piece)
}

func (b *Board) remove(piece *Piece) {
	b.cellAt(piece.Position).piece = nil
	roster, ok := utils.Remove(b.pieces[piece.Color], piece)
	if !ok {
		panic("captured piece is not in its roster")
	}
	b.pieces[piece.Color] = roster
}

// Winner returns the side that won, or NoSide. A side with no legal moves on
// its turn has lost.
func (b *Board) Winner() Side {
	for _, moves := range b.moves {
		if len(moves) > 0 {
			return NoSide
		}
	}
	return b.turn.Opponent()
}

// Clone deep copies both rosters, rebuilds the cell references and copies
// the legal move set.
func (b *Board) Clone() *Board {
	c := &Board{
		cells:  b.cells,
		turn:   b.turn,
		player: b.player,
		moves:  make([][]Position, len(b.moves)),
	}
	for row := range c.cells {
		for col := range c.cells[row] {
			c.cells[row][col].piece = nil
		}
	}

	for side, roster := range b.pieces {
		c.pieces[side] = make([]*Piece, len(roster))
		for i, p := range roster {
			piece := *p
			c.pieces[side][i] = &piece
			c.cellAt(piece.Position).piece = &piece
		}
	}

	for i, moves := range b.moves {
		c.moves[i] = append(make([]Position, 0, len(moves)), moves...)
	}
	return c
}

// Highlight flags cells for the presentation layer.
func (b *Board) Highlight(positions []Position, on bool) {
	for _, p := range positions {
		b.cellAt(p).Highlighted = on
	}
}

func (b *Board) ClearHighlights() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col].Highlighted = false
		}
	}
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash turn
	binary.Write(hasher, binary.LittleEndian, int64(b.turn))

	// Hash occupancy row by row
	for row := range b.cells {
		for col := range b.cells[row] {
			binary.Write(hasher, binary.LittleEndian, symbol(b.cells[row][col].piece))
		}
	}

	return StateHash(hasher.Sum64())
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.cells {
		for col := range b.cells[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(symbol(b.cells[row][col].piece))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
