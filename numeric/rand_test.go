// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_Deterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(-10, 10, 32), b.Float(-10, 10, 32))
		assert.Equal(t, a.Int(-5, 5), b.Int(-5, 5))
	}
	c := NewRand(43)
	assert.NotEqual(t, NewRand(42).Floats(8, 0, 1, 64), c.Floats(8, 0, 1, 64))
}

func TestRand_Ranges(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float(-1, 1, 64)
		assert.True(t, f >= -1 && f < 1, "float %g out of range", f)
		n := r.Int(-3, 3)
		assert.True(t, n >= -3 && n <= 3, "int %d out of range", n)
		u := r.Uint(10, 12)
		assert.True(t, u >= 10 && u <= 12, "uint %d out of range", u)
	}
	assert.Equal(t, int64(5), r.Int(5, 5))
}

func TestRand_Float32Rounding(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 100; i++ {
		f := r.Float(0, 100, 32)
		assert.Equal(t, f, float64(float32(f)))
	}
}

func TestRand_HalfRounding(t *testing.T) {
	r := NewRand(9)
	for i := 0; i < 100; i++ {
		f := r.Float(0, 100, 16)
		assert.Equal(t, f, float64(RoundHalf(float32(f))))
	}
}

func TestSeedFor(t *testing.T) {
	// FNV-1a of the empty string is the offset basis.
	assert.Equal(t, uint64(0xcbf29ce484222325), SeedFor(""))
	assert.Equal(t, SeedFor("builtin_uniform"), SeedFor("builtin_uniform"))
	assert.NotEqual(t, SeedFor("builtin_uniform"), SeedFor("const_builtin"))
}
