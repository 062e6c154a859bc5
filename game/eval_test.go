package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeuristic(t *testing.T) {
	t.Run("starting position is balanced", func(t *testing.T) {
		require.Equal(t, 0, Heuristic(NewBoard(Black, true)))
	})

	t.Run("advancement adds value", func(t *testing.T) {
		b := MustParseBoard(`
			r . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . b . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .`, Black)

		// Black has advanced four rows, red none
		require.Equal(t, (1+4)-(1+0), Heuristic(b))
	})

	t.Run("king outweighs any piece", func(t *testing.T) {
		b := MustParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . r .
			. B . . . . . .
			. . . . . . . .`, Red)

		require.Equal(t, KING_VALUE-(1+5), Heuristic(b))
		require.Greater(t, KING_VALUE, 1+Size-2, "King should be worth more than the most advanced piece")
	})

	t.Run("score does not depend on the side to move", func(t *testing.T) {
		b := NewBoard(Black, true)
		b.Play(b.Candidates()[0])
		black := Heuristic(b)
		b.SetTurn(Black)

		require.Equal(t, black, Heuristic(b))
	})
}

func TestMaterial(t *testing.T) {
	b := MustParseBoard(`
		. . . . . . . .
		. r . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . b . .
		b . . . . . . .`, Black)

	require.Equal(t, 1, Material(b))
}
