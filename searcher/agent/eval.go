package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns an agent that plays the move selected by a searcher.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(board *game.Board) (game.Move, metrics.SearchMetric) {
	return a.searcher.FindMove(board)
}
