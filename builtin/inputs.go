// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"math"
	"strings"

	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// inputs describes the scalar test inputs of an operation. Each tuple
// holds one scalar per argument; vector and matrix arguments are filled
// from consecutive tuples.
type inputs struct {
	sets    [][]float64  // nominal values per argument, combined as a product
	corners [][]float64  // whole tuples exercising precision corners
	ranges  [][2]float64 // random ranges per argument; nil disables random tuples
	bounded []int        // arguments that receive boundary values
	fixed   bool         // bounded is explicit, possibly empty
}

// randomTuples is the number of pseudo-random tuples per operation.
const randomTuples = 3

func in(sets ...[]float64) inputs {
	return inputs{sets: sets}
}

func (in inputs) corner(tuples ...[]float64) inputs {
	in.corners = append(append([][]float64(nil), in.corners...), tuples...)
	return in
}

func (in inputs) random(ranges ...[2]float64) inputs {
	in.ranges = ranges
	return in
}

// bounds restricts boundary values to the listed arguments. With no
// arguments no boundary values are used.
func (in inputs) bounds(args ...int) inputs {
	in.bounded = args
	in.fixed = true
	return in
}

func (in inputs) isBounded(arg int) bool {
	if !in.fixed {
		return true
	}
	for _, a := range in.bounded {
		if a == arg {
			return true
		}
	}
	return false
}

// product returns the Cartesian product of sets, the last argument varying
// fastest.
func product(sets [][]float64) [][]float64 {
	out := [][]float64{nil}
	for _, set := range sets {
		var next [][]float64
		for _, prefix := range out {
			for _, x := range set {
				t := append(append([]float64(nil), prefix...), x)
				next = append(next, t)
			}
		}
		out = next
	}
	return out
}

// narrowIntMax bounds int inputs of signatures from before 32-bit
// integers: GLSL 1.10, 1.20 and ES 1.00 guarantee 16 bits plus a sign.
const narrowIntMax = 1 << 15

// narrowInts reports whether v only guarantees 16-bit integers.
func narrowInts(v glsl.Version) bool {
	if v.ES {
		return !v.AtLeast(300)
	}
	return !v.AtLeast(130)
}

// boundaryValues returns the boundary values of a base type in language
// version v.
func boundaryValues(b types.BaseType, v glsl.Version) []float64 {
	switch b {
	case types.Float:
		return []float64{0, math.Copysign(0, -1), math.MaxFloat32, -math.MaxFloat32, math.Inf(1), math.Inf(-1)}
	case types.Double:
		return []float64{0, math.Copysign(0, -1), math.MaxFloat64, -math.MaxFloat64, math.Inf(1), math.Inf(-1)}
	case types.Int:
		if narrowInts(v) {
			return []float64{-narrowIntMax, narrowIntMax - 1}
		}
		return []float64{math.MinInt32, math.MaxInt32}
	case types.Uint:
		return []float64{0, math.MaxUint32}
	case types.Bool:
		return []float64{0, 1}
	}
	return nil
}

// tuples expands in for a signature: nominal product, boundary values,
// corners and random tuples in that order.
func (in inputs) tuples(sig Signature, seed uint64) [][]float64 {
	out := product(in.sets)
	base := out[0]
	for arg, t := range sig.Args {
		if !in.isBounded(arg) {
			continue
		}
		for _, b := range boundaryValues(t.Base(), sig.Version) {
			tuple := append([]float64(nil), base...)
			tuple[arg] = b
			out = append(out, tuple)
		}
	}
	out = append(out, in.corners...)
	if in.ranges != nil {
		r := numeric.NewRand(seed)
		for k := 0; k < randomTuples; k++ {
			tuple := make([]float64, len(sig.Args))
			for arg, t := range sig.Args {
				lo, hi := in.ranges[arg][0], in.ranges[arg][1]
				if t.Base() == types.Int && narrowInts(sig.Version) {
					lo, hi = max(lo, -narrowIntMax), min(hi, narrowIntMax-1)
				}
				switch {
				case t.Base().IsFloat():
					tuple[arg] = r.Float(lo, hi, t.Base().Bits())
				case t.Base() == types.Bool:
					tuple[arg] = float64(r.Int(0, 1))
				default:
					tuple[arg] = float64(r.Int(int64(lo), int64(hi)))
				}
			}
			out = append(out, tuple)
		}
	}
	return out
}

// argValue builds an argument of type t from the scalars at position arg
// of consecutive tuples, starting at tuple first and wrapping around.
func argValue(t *types.Type, tuples [][]float64, arg, first int) types.Value {
	comps := make([]float64, t.Components())
	for i := range comps {
		comps[i] = tuples[(first+i)%len(tuples)][arg]
	}
	switch {
	case t.Base().IsFloat():
		return types.FloatsOf(t.Base(), t.Rows(), t.Cols(), comps...)
	case t.Base() == types.Bool:
		bs := make([]bool, len(comps))
		for i, c := range comps {
			bs[i] = c != 0
		}
		return types.Bools(bs...)
	default:
		ints := make([]int64, len(comps))
		for i, c := range comps {
			ints[i] = int64(c)
		}
		return types.IntsOf(t.Base(), ints...)
	}
}

// vectors evaluates sig over the tuples of in. Each vector consumes as many
// tuples as its widest argument has components. Inputs the implementation
// rejects are dropped; duplicates are removed.
func vectors(sig Signature, in inputs, tol string, seed uint64) []TestVector {
	tuples := in.tuples(sig, seed)
	width := 1
	for _, a := range sig.Args {
		width = max(width, a.Components())
	}
	count := (len(tuples) + width - 1) / width

	var out []TestVector
	seen := make(map[string]bool)
	for k := 0; k < count; k++ {
		args := make([]types.Value, len(sig.Args))
		for arg, t := range sig.Args {
			args[arg] = argValue(t, tuples, arg, k*width)
		}
		result, err := sig.eval(sig.Result, args)
		if err != nil {
			continue
		}
		v := TestVector{Args: args, Result: result, Tolerance: tolerance(sig, tol, args, result)}
		if key := v.key(); !seen[key] {
			seen[key] = true
			out = append(out, v)
		}
	}
	return out
}

func tolerance(sig Signature, op string, args []types.Value, result types.Value) numeric.Tolerance {
	if !result.Base().IsFloat() {
		return numeric.Exact()
	}
	flat := make([][]float64, len(args))
	for i, a := range args {
		flat[i] = a.Flatten()
	}
	return numeric.ForOp(op, sig.Width(), flat, result.Flatten())
}

// seedOf derives the random seed of an operation in a catalogue.
func seedOf(catalogue, op string, args []*types.Type) uint64 {
	names := make([]string, len(args))
	for i, a := range args {
		names[i] = a.Name()
	}
	return numeric.SeedFor(catalogue + ":" + op + "(" + strings.Join(names, ",") + ")")
}
