// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package numeric

import "math"

// Tolerance is the permitted error of an operation result.
//
// ULPs and Abs hold either a single value applying to every component or
// one value per component. A component passes when its error is within
// max(ULPs*ulp(expected), Abs). The zero Tolerance is exact.
type Tolerance struct {
	ULPs []float64
	Abs  []float64
}

// Exact returns the zero tolerance.
func Exact() Tolerance { return Tolerance{} }

// ULPs returns a tolerance of n ULPs for every component.
func ULPs(n float64) Tolerance { return Tolerance{ULPs: []float64{n}} }

// Absolute returns an absolute tolerance for every component.
func Absolute(a float64) Tolerance { return Tolerance{Abs: []float64{a}} }

// IsExact reports whether no error is permitted.
func (t Tolerance) IsExact() bool {
	for _, u := range t.ULPs {
		if u != 0 {
			return false
		}
	}
	for _, a := range t.Abs {
		if a != 0 {
			return false
		}
	}
	return true
}

// IsScalar reports whether the tolerance has a single value for all
// components.
func (t Tolerance) IsScalar() bool {
	return len(t.ULPs) <= 1 && len(t.Abs) <= 1
}

// ULPAt returns the ULP allowance of component i.
func (t Tolerance) ULPAt(i int) float64 { return at(t.ULPs, i) }

// AbsAt returns the absolute allowance of component i.
func (t Tolerance) AbsAt(i int) float64 { return at(t.Abs, i) }

func at(xs []float64, i int) float64 {
	switch {
	case len(xs) == 0:
		return 0
	case len(xs) == 1:
		return xs[0]
	default:
		return xs[i]
	}
}

// Bounds converts the tolerance into absolute per-component bounds around
// the expected components, width being 32 or 64.
func (t Tolerance) Bounds(expected []float64, width int) []float64 {
	out := make([]float64, len(expected))
	for i, e := range expected {
		out[i] = Max(t.ULPAt(i)*ULP(e, width), t.AbsAt(i))
	}
	return out
}

// Scalar collapses the tolerance into one absolute bound suitable for a
// vector distance test: the Euclidean norm of the per-component bounds.
func (t Tolerance) Scalar(expected []float64, width int) float64 {
	var sum float64
	for _, b := range t.Bounds(expected, width) {
		sum += b * b
	}
	return math.Sqrt(sum)
}

// Within reports whether got is within tolerance of expected.
func (t Tolerance) Within(got, expected []float64, width int) bool {
	bounds := t.Bounds(expected, width)
	for i := range expected {
		if got[i] == expected[i] {
			continue
		}
		if math.Abs(got[i]-expected[i]) > bounds[i] {
			return false
		}
	}
	return true
}

var exactOps = map[string]bool{
	"op-add": true, "op-sub": true, "op-mult": true, "op-neg": true, "op-mod": true,
	"abs": true, "sign": true, "floor": true, "ceil": true, "trunc": true, "round": true,
	"roundEven": true, "fract": true, "min": true, "max": true, "clamp": true, "step": true,
	"mod": true, "faceforward": true, "matrixCompMult": true, "outerProduct": true, "transpose": true,
}

var ulpOps = map[string]float64{
	"op-div":      2.5,
	"radians":     2.5,
	"degrees":     2.5,
	"inversesqrt": 2,
	"sqrt":        2.5,
	"tan":         4096,
	"asin":        4096,
	"acos":        4096,
	"atan":        4096,
	"mix":         4,
	"smoothstep":  4,
}

const (
	logAbsTolerance  = 0x1p-21
	trigAbsTolerance = 0x1p-11
)

// ForOp returns the tolerance of a built-in operation given its flattened
// arguments and result, width being 32 or 64. Operations without a float
// result, and unknown operations, are exact.
//
// Geometric and matrix operations get an absolute tolerance proportional to
// the magnitude of the terms summed while computing them, see Magnitude.
func ForOp(op string, width int, args [][]float64, result []float64) Tolerance {
	if exactOps[op] {
		return Exact()
	}
	if u, ok := ulpOps[op]; ok {
		return ULPs(u)
	}

	switch op {
	case "exp", "exp2":
		ulps := make([]float64, len(args[0]))
		for i, x := range args[0] {
			ulps[i] = 3 + 2*math.Abs(x)
		}
		return Tolerance{ULPs: ulps}
	case "log", "log2":
		n := len(args[0])
		t := Tolerance{ULPs: make([]float64, n), Abs: make([]float64, n)}
		for i, x := range args[0] {
			if x >= 0.5 && x <= 2.0 {
				t.Abs[i] = logAbsTolerance
			} else {
				t.ULPs[i] = 3
			}
		}
		return t
	case "pow":
		return powTolerance(width, args[0], args[1], result)
	case "sin", "cos":
		return Absolute(trigAbsTolerance)
	case "length", "distance", "dot", "normalize", "cross", "reflect", "refract":
		n := float64(len(args[0]))
		return Absolute(n * 2 * ULP(Magnitude(op, args), width))
	case "determinant", "inverse", "matmul":
		n := math.Sqrt(float64(len(args[0])))
		if op == "matmul" {
			n = float64(len(args[0]))
		}
		return Absolute(4 * n * ULP(Magnitude(op, args), width))
	}
	return Exact()
}

// powTolerance inherits the error of exp2(y*log2(x)).
func powTolerance(width int, x, y, result []float64) Tolerance {
	ulps := make([]float64, len(x))
	for i := range x {
		l := math.Log2(x[i])
		z := y[i] * l
		dlog := 3 * ULP(l, width)
		if x[i] >= 0.5 && x[i] <= 2.0 {
			dlog = logAbsTolerance
		}
		ulps[i] = 3 + 2*math.Abs(z)
		if u := ULP(result[i], width); u > 0 && !math.IsInf(u, 0) {
			ulps[i] += math.Abs(y[i]) * dlog * math.Ln2 * math.Abs(result[i]) / u
		}
	}
	return Tolerance{ULPs: ulps}
}

// Magnitude estimates the sum of absolute values of the terms combined
// when evaluating a geometric or matrix operation.
func Magnitude(op string, args [][]float64) float64 {
	sumAbs := func(xs []float64) float64 {
		var s float64
		for _, x := range xs {
			s += math.Abs(x)
		}
		return s
	}
	switch op {
	case "dot":
		var s float64
		for i := range args[0] {
			s += math.Abs(args[0][i] * args[1][i])
		}
		return s
	case "length":
		return sumAbs(args[0])
	case "distance":
		var s float64
		for i := range args[0] {
			s += math.Abs(args[0][i] - args[1][i])
		}
		return s
	case "normalize":
		return 1
	case "cross", "matmul":
		return sumAbs(args[0]) * sumAbs(args[1])
	case "reflect":
		n := sumAbs(args[1])
		return sumAbs(args[0]) * (1 + 2*n*n)
	case "refract":
		n := sumAbs(args[1])
		return (sumAbs(args[0]) + n) * (1 + math.Abs(args[2][0])) * (1 + n*n)
	case "determinant", "inverse":
		size := int(math.Sqrt(float64(len(args[0]))))
		m := 1.0
		for c := 0; c < size; c++ {
			m *= math.Max(1, sumAbs(args[0][c*size:(c+1)*size]))
		}
		return m
	}
	return 0
}
