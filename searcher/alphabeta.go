package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is a depth-bounded minimax search with alpha-beta pruning. It is
// not safe for concurrent use: the shuffle and metrics are shared by calls.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options...)}
}

func (s *AlphaBeta) Depth() int {
	return s.depth
}

// FindMove searches a clone of the board; the board itself is never touched.
func (s *AlphaBeta) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	s.metrics.Start(s.depth)
	move, value := s.Search(board.Clone(), s.depth)
	metric := s.metrics.Complete(value)

	log.Debug().
		Str("player", board.Turn().String()).
		Stringer("move", move).
		Int("value", value).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msgf("calculated %d board states", metric.Nodes)
	return move, metric
}

// Search returns the best move and its value from Black's perspective. The
// board is consumed: callers keep ownership of the original by passing a clone.
func (s *AlphaBeta) Search(board *game.Board, depth int) (game.Move, int) {
	return s.search(board, depth, fullWindow())
}

func (s *AlphaBeta) search(board *game.Board, depth int, w window) (game.Move, int) {
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

			_, value := s.search(child, depth-1, w)
			if !r.better(value, best) {
				continue
			}
			best, bestMove = value, move

			w = r.tighten(w, best)
			if w.closed() {
				s.metrics.AddCutoff()
				return bestMove, best
			}
		}
	}
	return bestMove, best
}
