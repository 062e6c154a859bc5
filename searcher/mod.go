package searcher

import (
	"fmt"
	"math"
	"time"

	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
)

// Terminal scores, oriented like game.Heuristic: Black maximizes.
const BLACK_WIN = math.MaxInt32
const RED_WIN = -BLACK_WIN

type Searcher interface {
	// FindMove returns the selected move for the side to move and the metrics of the search
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric)
}

type Option func(c *config)

type config struct {
	depth    int
	evaluate game.Evaluate
	shuffle  Shuffle // Overrides seed when set
	seed     uint64
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithShuffle(shuffle Shuffle) Option {
	return func(c *config) {
		if shuffle != nil {
			c.shuffle = shuffle
		}
	}
}

// WithSeed gives every searcher built with the option its own random source,
// seeded identically.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.shuffle = nil
		c.seed = seed
	}
}

// WithoutShuffle enumerates pieces in roster order, for deterministic play.
func WithoutShuffle() Option {
	return WithShuffle(InOrder)
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options ...Option) config {
	c := config{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.Heuristic,
		seed:     uint64(time.Now().UnixNano()),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	if c.shuffle == nil {
		c.shuffle = RandomShuffle(c.seed)
	}
	if c.depth > meta.MAX_DEPTH {
		panic(fmt.Sprintf("search depth %d exceeds %d", c.depth, meta.MAX_DEPTH))
	}
	return c
}

// terminal scores a decided board, or reports false if play goes on.
func terminal(board *game.Board) (int, bool) {
	switch board.Winner() {
	case game.Black:
		return BLACK_WIN, true
	case game.Red:
		return RED_WIN, true
	default:
		return 0, false
	}
}
