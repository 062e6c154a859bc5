package game

import "fmt"

// Move relocates the active side's piece at roster index Piece to To.
type Move struct {
	Piece int
	From  Position
	To    Position
}

// NoMove is returned by searchers when the board is already decided.
var NoMove = Move{Piece: -1}

func (m Move) IsCapture() bool {
	return IsCapture(m.From, m.To)
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// NewMove builds a move for the active side's piece at roster index i.
func (b *Board) NewMove(i int, to Position) Move {
	return Move{Piece: i, From: b.pieces[b.turn][i].Position, To: to}
}

// Candidates flattens the legal move set into moves.
func (b *Board) Candidates() []Move {
	var moves []Move
	for i, destinations := range b.moves {
		for _, to := range destinations {
			moves = append(moves, b.NewMove(i, to))
		}
	}
	return moves
}

// IsLegal reports whether the move is in the current legal move set.
func (b *Board) IsLegal(m Move) bool {
	if m.Piece < 0 || m.Piece >= len(b.moves) {
		return false
	}
	for _, to := range b.moves[m.Piece] {
		if to == m.To {
			return true
		}
	}
	return false
}

// LegalMoves computes, for every piece of the side to move, its legal
// destinations. If any piece can capture, only captures are legal and pieces
// without a capture get an empty list.
func (b *Board) LegalMoves() [][]Position {
	pieces := b.pieces[b.turn]
	moves := make([][]Position, len(pieces))

	hasCapture := false
	for i, piece := range pieces {
		moves[i] = b.ValidMoves(piece)
		if len(captures(piece, moves[i])) > 0 {
			hasCapture = true
		}
	}

	if hasCapture {
		for i, piece := range pieces {
			moves[i] = captures(piece, moves[i])
		}
	}
	return moves
}

// ValidMoves returns the destinations of a single piece. Captures are
// compulsory per piece: if one is found, steps are dropped.
func (b *Board) ValidMoves(piece *Piece) []Position {
	col, row := piece.Position.Col, piece.Position.Row

	moves := []Position{}
	canCapture := false
	for _, dir := range piece.directions() {
		newRow := row + dir
		if !inBounds(newRow) {
			continue
		}
		for offset := -1; offset <= 1; offset += 2 {
			newCol := col + offset
			if !inBounds(newCol) {
				continue
			}

			other := b.cells[newRow][newCol].piece
			if other == nil {
				if !canCapture {
					moves = append(moves, Position{Col: newCol, Row: newRow})
				}
				continue
			}
			if other.Color == piece.Color {
				continue
			}

			// Jump over an opposing piece onto the empty square beyond it
			jump := Position{Col: newCol + offset, Row: newRow + dir}
			if jump.Valid() && b.cellAt(jump).Empty() {
				moves = append(moves, jump)
				canCapture = true
			}
		}
	}

	if canCapture {
		return captures(piece, moves)
	}
	return moves
}

func captures(piece *Piece, moves []Position) []Position {
	filtered := []Position{}
	for _, to := range moves {
		if IsCapture(piece.Position, to) {
			filtered = append(filtered, to)
		}
	}
	return filtered
}

// Play applies a move taken from the legal move set. A capture removes the
// jumped piece; if the same piece can capture again the turn does not pass and
// only its further captures are legal. Otherwise the piece is crowned on its
// king row and the turn passes.
func (b *Board) Play(m Move) {
	piece := b.pieces[b.turn][m.Piece]
	from, to := piece.Position, m.To
	if !b.cellAt(to).Empty() {
		panic(fmt.Sprintf("cannot move %v onto occupied %v", from, to))
	}

	b.cellAt(from).piece = nil
	b.cellAt(to).piece = piece
	piece.Position = to

	if IsCapture(from, to) {
		jumped := b.cellAt(Position{Col: (from.Col + to.Col) / 2, Row: (from.Row + to.Row) / 2}).piece
		if jumped == nil || jumped.Color == piece.Color {
			panic(fmt.Sprintf("capture %v->%v does not jump an opposing piece", from, to))
		}
		b.remove(jumped)

		// Continue the chain with the same piece
		if further := captures(piece, b.ValidMoves(piece)); len(further) > 0 {
			moves := make([][]Position, len(b.pieces[b.turn]))
			for i := range moves {
				moves[i] = []Position{}
			}
			moves[m.Piece] = further
			b.moves = moves
			return
		}
	}

	if to.Row == piece.Color.KingRow() {
		piece.Crowned = true
	}
	b.turn = b.turn.Opponent()
	b.Recompute()
}
