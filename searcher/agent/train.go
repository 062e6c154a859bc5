package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that samples uniformly among the
// legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	candidates := board.Candidates()
	if len(candidates) == 0 {
		return game.NoMove, metrics.SearchMetric{}
	}
	return candidates[a.rng.Intn(len(candidates))], metrics.SearchMetric{}
}
