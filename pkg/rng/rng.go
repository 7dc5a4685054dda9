// Package rng provides the seedable random source shared by the scenes.
package rng

import "math/rand/v2"

// Source is the subset of random draws the renderers need. Scenes accept a
// Source instead of reaching for a global generator so runs can be replayed.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). It returns 0 when n <= 0.
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// New creates a deterministic RNG using the provided seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Range returns a uniform value in [lo, hi).
func Range(s Source, lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Centered returns a uniform value in [-span/2, span/2).
func Centered(s Source, span float64) float64 {
	return (s.Float64() - 0.5) * span
}

// Constant is a Source that always yields the same fraction. It is useful for
// pinning every random draw in tests.
type Constant float64

// Float64 returns the constant fraction.
func (c Constant) Float64() float64 { return float64(c) }

// IntN scales the constant fraction into [0, n).
func (c Constant) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(float64(c) * float64(n))
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
