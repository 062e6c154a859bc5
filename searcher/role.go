package searcher

import (
	"math"

	"checkers/game"
)

// role is the objective of the side to move: Black maximizes, Red minimizes.
type role int

const (
	maximizer role = iota
	minimizer
)

func roleOf(side game.Side) role {
	if side == game.Black {
		return maximizer
	}
	return minimizer
}

// better reports whether score improves on best for this role.
func (r role) better(score, best int) bool {
	if r == maximizer {
		return score > best
	}
	return score < best
}

// worst is below any reachable score for this role, so the first move
// always improves on it.
func (r role) worst() int {
	if r == maximizer {
		return RED_WIN - 1
	}
	return BLACK_WIN + 1
}

// window holds the alpha-beta bounds: alpha is the best score Black is
// already assured of, beta the best score Red is assured of.
type window struct {
	alpha int
	beta  int
}

func fullWindow() window {
	return window{alpha: math.MinInt, beta: math.MaxInt}
}

// tighten moves this role's bound to best when best improves on it.
func (r role) tighten(w window, best int) window {
	if r == maximizer && best > w.alpha {
		w.alpha = best
	}
	if r == minimizer && best < w.beta {
		w.beta = best
	}
	return w
}

// closed reports whether no remaining sibling can change the parent's choice.
// Equal bounds also close.
func (w window) closed() bool {
	return w.alpha >= w.beta
}
