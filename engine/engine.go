package engine

import (
	"errors"

	"checkers/experiments/metrics"
)

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNotHumanTurn  = errors.New("it is not the human player's turn")
	ErrNotAITurn     = errors.New("it is not the AI's turn")
	ErrNoSelection   = errors.New("no piece is selected")
	ErrNotSelectable = errors.New("piece cannot be selected")
	ErrNoSession     = errors.New("session not found")
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
