// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gen

import (
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// RandomValue draws a value of type t with components in [lo, hi].
// Unsigned components start at zero when lo is negative. Float
// components are rounded to the width of the base type.
func RandomValue(r *numeric.Rand, t *types.Type, lo, hi int64) types.Value {
	n := t.Components()
	switch t.Base() {
	case types.Int:
		comps := make([]int64, n)
		for i := range comps {
			comps[i] = r.Int(lo, hi)
		}
		return types.Ints(comps...)
	case types.Uint:
		comps := make([]uint64, n)
		for i := range comps {
			comps[i] = r.Uint(uint64(numeric.Max(lo, 0)), uint64(hi))
		}
		return types.Uints(comps...)
	case types.Bool:
		comps := make([]bool, n)
		for i := range comps {
			comps[i] = r.Bool()
		}
		return types.Bools(comps...)
	default:
		return types.FloatsOf(t.Base(), t.Rows(), t.Cols(), r.Floats(n, float64(lo), float64(hi), t.Base().Bits())...)
	}
}
