// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sampler provides the uniform index source used by every random
// choice in article generation. Production code uses the process-wide
// math/rand/v2 source; tests substitute deterministic sequences.
package sampler

import "math/rand/v2"

// Sampler picks an index uniformly in [0, n). Callers never pass n <= 0.
type Sampler interface {
	PickIndex(n int) int
}

// Func adapts a plain function to the Sampler interface.
type Func func(n int) int

// PickIndex calls f and clamps the result into [0, n).
func (f Func) PickIndex(n int) int {
	return clamp(f(n), n)
}

type globalSource struct{}

func (globalSource) PickIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// Default returns a Sampler backed by the process-wide random source.
func Default() Sampler {
	return globalSource{}
}

type seeded struct {
	r *rand.Rand
}

func (s *seeded) PickIndex(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// NewSeeded returns a Sampler whose output is fully determined by seed.
// Two samplers built from the same seed produce the same sequence.
func NewSeeded(seed uint64) Sampler {
	return &seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Fixed returns a Sampler that always answers i (clamped into range).
func Fixed(i int) Sampler {
	return Func(func(int) int { return i })
}

// sequence replays a fixed list of indexes, cycling when exhausted.
type sequence struct {
	values []int
	pos    int
}

// Sequence returns a Sampler that replays values in order, starting over
// after the last one. An empty sequence always answers 0.
func Sequence(values ...int) Sampler {
	return &sequence{values: values}
}

func (s *sequence) PickIndex(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return clamp(v, n)
}

func clamp(v, n int) int {
	if n <= 0 || v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
