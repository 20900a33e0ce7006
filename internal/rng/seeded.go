package rng

import "math/rand"

// Seeded is a repeatable generator backed by math/rand
// It must not be used where the order of the cards needs to be unpredictable.
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for the seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
