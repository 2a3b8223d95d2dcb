// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"testing"
)

func TestULP32(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1, 0x1p-23},
		{-1, 0x1p-23},
		{2, 0x1p-22},
		{0, math.SmallestNonzeroFloat32},
		{math.MaxFloat32, 0x1p104},
		{math.Inf(1), math.Inf(1)},
	}
	for _, tt := range tests {
		if got := ULP32(tt.in); got != tt.want {
			t.Errorf("ULP32(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
	if !math.IsNaN(ULP32(math.NaN())) {
		t.Error("ULP32(NaN) is not NaN")
	}
}

func TestULP64(t *testing.T) {
	if got := ULP64(1); got != 0x1p-52 {
		t.Errorf("ULP64(1) = %g", got)
	}
	if got := ULP(1, 64); got != 0x1p-52 {
		t.Errorf("ULP(1, 64) = %g", got)
	}
	if got := ULP(1, 32); got != 0x1p-23 {
		t.Errorf("ULP(1, 32) = %g", got)
	}
}

func TestULPDistance(t *testing.T) {
	one := float32(1)
	next := math.Nextafter32(one, 2)
	if d := ULPDistance32(one, next); d != 1 {
		t.Errorf("distance to next float = %d", d)
	}
	if d := ULPDistance32(0, float32(math.Copysign(0, -1))); d != 0 {
		t.Errorf("distance between zeros = %d", d)
	}
	if d := ULPDistance32(math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32); d != 2 {
		t.Errorf("distance across zero = %d", d)
	}
	if d := ULPDistance64(1, math.Nextafter(1, 0)); d != 1 {
		t.Errorf("64-bit distance = %d", d)
	}
	if d := ULPDistance64(-math.MaxFloat64, math.MaxFloat64); d == 0 {
		t.Error("distance between extremes is zero")
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct{ x, align, want int }{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{28, 8, 32},
		{12, 4, 12},
	}
	for _, tt := range tests {
		if got := RoundUp(tt.x, tt.align); got != tt.want {
			t.Errorf("RoundUp(%d, %d) = %d, want %d", tt.x, tt.align, got, tt.want)
		}
	}
}
