// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// RoundUp rounds x up to a multiple of align. align must be positive.
func RoundUp[T constraints.Integer](x, align T) T {
	if r := x % align; r != 0 {
		return x + align - r
	}
	return x
}

