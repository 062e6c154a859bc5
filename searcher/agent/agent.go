package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
)

type Agent interface {
	// FindMove returns a legal move for the side to move and performance metrics (if collected) from the search
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}
