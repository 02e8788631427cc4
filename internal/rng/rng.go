// Package rng provides the random source shared by the simulations, so
// tests can swap in a fixed sequence and check exact trajectories.
package rng

import (
	"math/rand"
	"time"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a seeded source. A zero seed picks one from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sequence replays Values in order and wraps around at the end.
// An empty Sequence always returns 0.
type Sequence struct {
	Values []float64
	next   int
}

// Fixed returns a Sequence that always yields v.
func Fixed(v float64) *Sequence {
	return &Sequence{Values: []float64{v}}
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next]
	s.next = (s.next + 1) % len(s.Values)
	return v
}

// Range maps a draw from src onto [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}
