package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// Minimax explores the full tree to the configured depth without pruning.
// It selects the same value as AlphaBeta and serves as its reference.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options...)}
}

func (s *Minimax) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	move, value := s.Search(board.Clone(), s.depth)
	metric := s.metrics.Complete(value)

	log.Debug().
		Str("player", board.Turn().String()).
		Stringer("move", move).
		Int("value", value).
		Msgf("calculated %d board states", metric.Nodes)
	return move, metric
}

func (s *Minimax) Search(board *game.Board, depth int) (game.Move, int) {
	if score, over := terminal(board); over {
		s.metrics.AddNode()
		return game.NoMove, score
	}
	if depth == 0 {
		s.metrics.AddNode()
		return game.NoMove, s.evaluate(board)
	}

	r := roleOf(board.Turn())
	best := r.worst()
	bestMove := game.NoMove

	moves := board.Moves()
	for _, idx := range s.shuffle(len(moves)) {
		for _, to := range moves[idx] {
			move := board.NewMove(idx, to)
			child := board.Clone()
			child.Play(move)

			if _, value := s.Search(child, depth-1); r.better(value, best) {
				best, bestMove = value, move
			}
		}
	}
	return bestMove, best
}
