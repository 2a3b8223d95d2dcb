// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"strconv"
	"strings"

	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/numeric"
	"github.com/gogpu/fixturegen/types"
)

// evalFunc computes the result of an overload for concrete arguments.
type evalFunc func(result *types.Type, args []types.Value) (types.Value, error)

// Signature identifies one overload of a built-in operation.
type Signature struct {
	// Name is the operation name: a function name such as "radians", or
	// "op-" followed by an operator name for operators ("op-add").
	Name string

	// Template renders an invocation. {0}, {1}, ... stand for the
	// arguments, e.g. "radians({0})" or "({0} + {1})".
	Template string

	// Version is the first language version providing the overload.
	Version glsl.Version

	// Extension is required in addition to Version, or "".
	Extension string

	Result *types.Type
	Args   []*types.Type

	eval evalFunc
}

// Key returns a unique, stable identifier: "name(arg0,arg1)".
func (s Signature) Key() string {
	return s.Name + "(" + strings.Join(s.argNames(), ",") + ")"
}

// ArgSuffix returns the argument type names joined with '-', the form used
// in fixture names ("vec2-vec2-float").
func (s Signature) ArgSuffix() string {
	return strings.Join(s.argNames(), "-")
}

func (s Signature) argNames() []string {
	names := make([]string, len(s.Args))
	for i, a := range s.Args {
		names[i] = a.Name()
	}
	return names
}

// IsOperator reports whether the signature is an operator rather than a
// function.
func (s Signature) IsOperator() bool {
	return strings.HasPrefix(s.Name, "op-")
}

// Invocation substitutes exprs for the template placeholders.
func (s Signature) Invocation(exprs ...string) string {
	out := s.Template
	for i := len(exprs) - 1; i >= 0; i-- {
		out = strings.ReplaceAll(out, "{"+strconv.Itoa(i)+"}", exprs[i])
	}
	return out
}

// Eval computes the overload's result for args. The argument types must
// match the signature.
func (s Signature) Eval(args ...types.Value) (types.Value, error) {
	if err := checkArgs(s, args); err != nil {
		return types.Value{}, err
	}
	return s.eval(s.Result, args)
}

// Width returns the float width in bits (32 or 64) used for tolerances.
func (s Signature) Width() int {
	for _, t := range append([]*types.Type{s.Result}, s.Args...) {
		if t.Base() == types.Double {
			return 64
		}
	}
	return 32
}

// TestVector is one concrete test case for a signature.
type TestVector struct {
	Args      []types.Value
	Result    types.Value
	Tolerance numeric.Tolerance
}

// IsFinite reports whether every argument and the result are finite.
func (v TestVector) IsFinite() bool {
	if !v.Result.IsFinite() {
		return false
	}
	for _, a := range v.Args {
		if !a.IsFinite() {
			return false
		}
	}
	return true
}

// key identifies the vector by its argument bit patterns.
func (v TestVector) key() string {
	var b strings.Builder
	for _, a := range v.Args {
		for i := 0; i < a.Len(); i++ {
			b.WriteString(strconv.FormatUint(a.Bits(i), 16))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	return b.String()
}
