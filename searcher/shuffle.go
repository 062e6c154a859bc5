package searcher

import "golang.org/x/exp/rand"

// Shuffle returns the order in which the n pieces of the side to move are
// explored. It must return a permutation of 0..n-1.
type Shuffle func(n int) []int

// RandomShuffle explores pieces in a random order drawn from a seeded source.
func RandomShuffle(seed uint64) Shuffle {
	rng := rand.New(rand.NewSource(seed))
	return func(n int) []int {
		return rng.Perm(n)
	}
}

// InOrder explores pieces in roster order.
func InOrder(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
