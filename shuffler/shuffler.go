// Package shuffler defines the pseudo-random, seed-based primitives that the
// card generation strategies are built on.
package shuffler

import (
	"fmt"
	"math/rand"

	bingo "github.com/tigredonorte/bingo-sub004"
)

// Shuffler provides methods for shuffling and drawing numbers using
// seed-based random logic.
type Shuffler struct {
	rng *rand.Rand
}

// New creates a new instance of a Shuffler
func New(rngSeed int64) *Shuffler {
	return &Shuffler{
		rng: rand.New(rand.NewSource(rngSeed)),
	}
}

// Shuffle returns a new slice containing the same elements as values in
// uniformly random order. The input slice is never mutated.
func (s *Shuffler) Shuffle(values []int) []int {
	shuffled := make([]int, len(values))
	copy(shuffled, values)
	for i := len(shuffled) - 1; i >= 1; i-- {
		randomIndex := s.rng.Intn(i + 1)
		shuffled[i], shuffled[randomIndex] = shuffled[randomIndex], shuffled[i]
	}
	return shuffled
}

// DrawDistinct returns count pairwise-distinct integers drawn from the
// inclusive range [min, max]. Generating the full range and shuffling it
// guarantees that we cannot ever draw duplicate values. Errors with
// bingo.ErrInvalidRange if the range cannot hold count distinct values.
func (s *Shuffler) DrawDistinct(min int, max int, count int) ([]int, error) {
	size := max - min + 1
	if count < 0 || size < 1 || count > size {
		return nil, fmt.Errorf("cannot draw %d distinct values from [%d, %d]: %w", count, min, max, bingo.ErrInvalidRange)
	}

	pool := make([]int, size)
	for i := range pool {
		pool[i] = min + i
	}
	return s.Shuffle(pool)[:count], nil
}

// Intn returns a pseudo-random value in [0, n) from the shuffler's seeded
// source.
func (s *Shuffler) Intn(n int) int {
	return s.rng.Intn(n)
}

// Chance reports true with the given probability, which must be in [0, 1].
func (s *Shuffler) Chance(probability float64) bool {
	return s.rng.Float64() < probability
}
