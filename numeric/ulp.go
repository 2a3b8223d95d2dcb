// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import "math"

// ULP32 returns the spacing between |x| rounded to float32 and the next
// float32 away from zero. ULP32(0) is the smallest denormal; at the largest
// finite value the spacing below it is returned; infinities and NaN yield
// +Inf and NaN.
func ULP32(x float64) float64 {
	f := float32(math.Abs(x))
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(float64(f), 0):
		return math.Inf(1)
	case f == math.MaxFloat32:
		return float64(f) - float64(math.Nextafter32(f, 0))
	}
	return float64(math.Nextafter32(f, math.MaxFloat32)) - float64(f)
}

// ULP64 is the binary64 counterpart of ULP32.
func ULP64(x float64) float64 {
	a := math.Abs(x)
	switch {
	case math.IsNaN(x):
		return math.NaN()
	case math.IsInf(a, 0):
		return math.Inf(1)
	case a == math.MaxFloat64:
		return a - math.Nextafter(a, 0)
	}
	return math.Nextafter(a, math.MaxFloat64) - a
}

// ULP returns ULP32 or ULP64 depending on width in bits.
func ULP(x float64, width int) float64 {
	if width == 64 {
		return ULP64(x)
	}
	return ULP32(x)
}

// orderedBits32 maps float32 bit patterns onto a monotonic integer line so
// that adjacent floats differ by one. Both zeros map to 0.
func orderedBits32(f float32) int64 {
	b := int64(math.Float32bits(f))
	if b&0x80000000 != 0 {
		return -(b & 0x7fffffff)
	}
	return b
}

// ULPDistance32 returns the number of representable float32 values between
// a and b. +0 and -0 are zero ULPs apart.
func ULPDistance32(a, b float32) uint64 {
	d := orderedBits32(a) - orderedBits32(b)
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// ULPDistance64 returns the number of representable float64 values between
// a and b.
func ULPDistance64(a, b float64) uint64 {
	oa, ob := orderedBits64(a), orderedBits64(b)
	if oa > ob {
		return uint64(oa - ob)
	}
	return uint64(ob - oa)
}

func orderedBits64(f float64) int64 {
	b := math.Float64bits(f)
	if b&(1<<63) != 0 {
		return -int64(b &^ (1 << 63))
	}
	return int64(b)
}
