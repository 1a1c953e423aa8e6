package rng

import (
	"math/rand"
	"time"
)

// Math wraps the math/rand library.
// Game outcomes have no monetary stake, so a non-cryptographic source is acceptable.
type Math struct {
	rng *rand.Rand
}

// NewMath returns a time-seeded generator
func NewMath() Math {
	return Math{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewMathWithSeed returns a generator with the specified seed.
// This should only be used by tests.
func NewMathWithSeed(seed int64) Math {
	return Math{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number in [0, n)
func (m Math) Intn(n int) int {
	return m.rng.Intn(n)
}
