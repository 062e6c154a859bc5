package engine

import (
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Update records a played move and the resulting state.
type Update struct {
	Move game.Move
	Side game.Side
	Hash game.StateHash
}

// LocalEngine plays two agents against each other, agents[game.Black] moving
// first.
type LocalEngine struct {
	Board    *game.Board
	Agents   [2]agent.Agent
	Updates  []Update
	MaxTurns int
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(black, red agent.Agent) *LocalEngine {
	if black == nil || red == nil {
		panic("need two agents")
	}
	return &LocalEngine{
		Board:    game.NewBoard(game.NoSide, true),
		Agents:   [2]agent.Agent{black, red},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until there's a winner or MaxTurns moves were
// played. A capture chain counts one move per jump.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Board.Turn()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Board.Turn())

	step := 1
	for e.Board.Winner() == game.NoSide && step <= e.MaxTurns {
		side := e.Board.Turn()
		move, searchMetric := e.Agents[side].FindMove(e.Board)
		if !e.Board.IsLegal(move) {
			panic("agent returned an illegal move " + move.String())
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       int(side),
			SearchMetric: searchMetric,
		})

		e.Board.Play(move)
		e.Updates = append(e.Updates, Update{
			Move: move,
			Side: side,
			Hash: e.Board.Hash(),
		})
		log.Debug().Int("step", step).Str("player", side.String()).Stringer("move", move).Msg("move played")
		step++
	}

	winner := e.Board.Winner()
	if winner != game.NoSide {
		log.Info().Msgf("game ended with a winner: %s", winner)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", e.MaxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = winner.String()
	return gameMetric.Winner, gameMetric, moveMetrics
}
