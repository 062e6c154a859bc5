package searcher

import (
	"testing"

	"checkers/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
- terminal: decided board -> no move, winning score of the winner
- leaf: depth 0 -> heuristic score
- choice: avoids a move that loses its last piece, takes a move that wins
- equivalence: pruning returns the exhaustive minimax value on reachable boards
- isolation: the searched board is never mutated
*/

// reachable plays random moves from the starting position.
func reachable(rng *rand.Rand, plies int) *game.Board {
	b := game.NewBoard(game.Black, true)
	for i := 0; i < plies && b.Winner() == game.NoSide; i++ {
		candidates := b.Candidates()
		b.Play(candidates[rng.Intn(len(candidates))])
	}
	return b
}

func TestAlphaBetaTerminal(t *testing.T) {
	t.Run("decided board returns the winning score", func(t *testing.T) {
		b := game.MustParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . . r . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .`, game.Black)
		s := NewAlphaBeta(WithDepth(3), WithoutShuffle())

		move, value := s.Search(b, 3)

		require.Equal(t, game.NoMove, move)
		require.Equal(t, RED_WIN, value)
	})

	t.Run("depth zero returns the heuristic", func(t *testing.T) {
		b := game.NewBoard(game.Black, true)
		b.Play(b.Candidates()[0])
		s := NewAlphaBeta(WithEvaluationFn(func(*game.Board) int { return 42 }))

		_, value := s.Search(b, 0)

		require.Equal(t, 42, value)
	})
}

func TestAlphaBetaFindMove(t *testing.T) {
	t.Run("takes the winning capture", func(t *testing.T) {
		b := game.MustParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . r . . . .
			. . . . b . . .
			. . . . . . . .
			. . . . . . . .
			b . . . . . . .`, game.Black)
		s := NewAlphaBeta(WithDepth(2), WithMetrics())

		move, metric := s.FindMove(b)

		require.Equal(t, game.Position{Col: 2, Row: 2}, move.To)
		require.Equal(t, 0, move.Piece)
		require.Equal(t, BLACK_WIN, metric.Value)
		require.Equal(t, 2, metric.Depth)
		require.Positive(t, metric.Nodes)
	})

	t.Run("avoids hanging its last piece", func(t *testing.T) {
		b := game.MustParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . r . .
			. . . . . . . .
			. . . b . . . .
			. . . . . . . .
			. . . . . . . .`, game.Black)

		for seed := uint64(0); seed < 5; seed++ {
			move, metric := NewAlphaBeta(WithDepth(2), WithSeed(seed), WithMetrics()).FindMove(b)

			require.Equal(t, game.Position{Col: 2, Row: 4}, move.To, "Stepping next to the red piece loses it")
			require.Greater(t, metric.Value, RED_WIN)
		}
	})

	t.Run("red minimizes", func(t *testing.T) {
		b := game.MustParseBoard(`
			. . . . . . . .
			. . . . . . . .
			. . . . r . . .
			. . . . . . . .
			. . . . . . b .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .`, game.Red)

		move, metric := NewAlphaBeta(WithDepth(2), WithoutShuffle(), WithMetrics()).FindMove(b)

		require.Equal(t, game.Position{Col: 3, Row: 3}, move.To, "Stepping next to the black piece loses it")
		require.Less(t, metric.Value, BLACK_WIN)
	})

	t.Run("does not mutate the board", func(t *testing.T) {
		b := game.NewBoard(game.Black, true)
		before, moves := b.String(), b.Clone().Moves()

		NewAlphaBeta(WithDepth(4)).FindMove(b)

		require.Equal(t, before, b.String())
		require.Equal(t, moves, b.Moves())
		require.Equal(t, game.Black, b.Turn())
	})

	t.Run("returned move is legal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 10; i++ {
			b := reachable(rng, rng.Intn(30))
			if b.Winner() != game.NoSide {
				continue
			}

			move, _ := NewAlphaBeta(WithDepth(3), WithSeed(uint64(i))).FindMove(b)

			require.True(t, b.IsLegal(move), "Move %v should be in the legal move set", move)
		}
	})
}

func TestAlphaBetaEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 25; i++ {
		b := reachable(rng, rng.Intn(40))
		for depth := 1; depth <= 4; depth++ {
			_, want := NewMinimax(WithoutShuffle()).Search(b.Clone(), depth)

			_, ordered := NewAlphaBeta(WithoutShuffle()).Search(b.Clone(), depth)
			require.Equal(t, want, ordered, "Pruning should not change the value at depth %d", depth)

			_, shuffled := NewAlphaBeta(WithSeed(uint64(i))).Search(b.Clone(), depth)
			require.Equal(t, want, shuffled, "Enumeration order should not change the value at depth %d", depth)
		}
	}
}

func TestAlphaBetaPrunes(t *testing.T) {
	b := game.NewBoard(game.Black, true)
	exhaustive := NewMinimax(WithDepth(4), WithoutShuffle(), WithMetrics())
	pruned := NewAlphaBeta(WithDepth(4), WithoutShuffle(), WithMetrics())

	_, full := exhaustive.FindMove(b)
	_, cut := pruned.FindMove(b)

	require.Equal(t, full.Value, cut.Value)
	require.Less(t, cut.Nodes, full.Nodes, "Pruning should score fewer boards")
	require.Positive(t, cut.Cutoffs)
	require.Zero(t, full.Cutoffs)
}

func TestNewAlphaBeta(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := NewAlphaBeta()
		require.Equal(t, 4, s.Depth())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		require.Equal(t, 4, NewAlphaBeta(WithDepth(0)).Depth())
		require.Equal(t, 2, NewAlphaBeta(WithDepth(2)).Depth())
	})

	t.Run("panics on unbounded depth", func(t *testing.T) {
		require.Panics(t, func() {
			NewAlphaBeta(WithDepth(100))
		}, "Should panic when depth exceeds the maximum")
	})
}
