// Package rng supplies the uniform random scalars that drive particle
// sampling. Every consumer takes a [Source] explicitly so runs can be
// reproduced from a seed and tests can script exact values.
package rng

import (
	"math/rand"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a seeded generator.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Uniform samples a value in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	v := lo + (hi-lo)*src.Float64()
	// lo + (hi-lo)*u can round up to hi when u is the largest float below 1.
	if v >= hi && hi > lo {
		v = lo
	}
	return v
}

// IntRange samples an integer in [lo, hi). hi must be greater than lo.
func IntRange(src Source, lo, hi int) int {
	n := lo + int(float64(hi-lo)*src.Float64())
	if n >= hi {
		n = hi - 1
	}
	return n
}

// Sequence replays a fixed list of values, wrapping around at the end.
// It exists for tests that need to control every draw.
type Sequence struct {
	Values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.pos }
