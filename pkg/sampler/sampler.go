// Package sampler provides the deterministic random primitives for the
// simulation: a seeded uniform generator and a derived Gaussian sampler.
package sampler

import (
	"math"
	"math/rand"
)

// epsilon floors the first Box–Muller draw away from zero so the logarithm
// is always defined.
const epsilon = 1e-12

// Sampler produces a reproducible, order-dependent sequence of random draws.
// Each instance exclusively owns its source; a given seed always yields the
// identical sequence of calls.
type Sampler struct {
	rng *rand.Rand
}

// New constructs a Sampler from an explicit seed.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Gauss returns a normally distributed draw with the given mean and standard
// deviation. It consumes exactly two uniform draws per call (Box–Muller).
func (s *Sampler) Gauss(mean, stdDev float64) float64 {
	u1 := s.Float64()
	if u1 < epsilon {
		u1 = epsilon
	}
	u2 := s.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stdDev*z
}
