package game

// KING_VALUE outweighs any uncrowned piece, however advanced.
const KING_VALUE = 10

// Heuristic scores material from Black's perspective: each uncrowned piece is
// worth 1 plus the rows it has advanced, each crowned piece KING_VALUE. The
// result is Black's total minus Red's total.
func Heuristic(b *Board) int {
	return material(b.pieces[Black]) - material(b.pieces[Red])
}

// Material counts pieces only, ignoring advancement and crowns.
func Material(b *Board) int {
	return len(b.pieces[Black]) - len(b.pieces[Red])
}

func material(pieces []*Piece) int {
	total := 0
	for _, p := range pieces {
		if p.Crowned {
			total += KING_VALUE
		} else {
			total += 1 + p.Advancement()
		}
	}
	return total
}
