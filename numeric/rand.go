// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG seed word.
const pcgStream = 0x9e3779b97f4a7c15

// Rand is a deterministic source of sample data.
// It is not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, pcgStream))}
}

// SeedFor returns the default seed of a named generator: the 64-bit
// FNV-1a hash of name.
func SeedFor(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// Float returns a value uniformly drawn from [lo, hi) and rounded to
// width bits (16, 32 or 64).
func (r *Rand) Float(lo, hi float64, width int) float64 {
	x := lo + (hi-lo)*r.r.Float64()
	switch width {
	case 16:
		return float64(RoundHalf(float32(x)))
	case 32:
		return float64(float32(x))
	}
	return x
}

// Floats returns n values drawn as by Float.
func (r *Rand) Floats(n int, lo, hi float64, width int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float(lo, hi, width)
	}
	return out
}

// Int returns a value uniformly drawn from the closed range [lo, hi].
func (r *Rand) Int(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi - lo)
	if span == math.MaxUint64 {
		return int64(r.r.Uint64())
	}
	return lo + int64(r.r.Uint64N(span+1))
}

// Uint returns a value uniformly drawn from the closed range [lo, hi].
func (r *Rand) Uint(lo, hi uint64) uint64 {
	if hi <= lo {
		return lo
	}
	if hi-lo == math.MaxUint64 {
		return r.r.Uint64()
	}
	return lo + r.r.Uint64N(hi-lo+1)
}

// Bool returns a uniformly drawn boolean.
func (r *Rand) Bool() bool {
	return r.r.Uint64()&1 == 1
}

// IntN returns a value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	return r.r.IntN(n)
}

// Pick returns a uniformly chosen element of xs. It panics on an empty slice.
func Pick[T any](r *Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

