// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package builtin

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/glsl"
	"github.com/gogpu/fixturegen/types"
)

// =============================================================================
// Coverage
// =============================================================================

func TestCatalogue_SignatureCoverage(t *testing.T) {
	for _, cat := range Catalogues() {
		t.Run(cat.Name(), func(t *testing.T) {
			require.NotZero(t, cat.Len())
			for _, sig := range cat.Signatures() {
				vs := cat.Vectors(sig)
				if len(vs) == 0 {
					t.Errorf("%s has no test vectors", sig.Key())
					continue
				}
				for i, v := range vs {
					require.Len(t, v.Args, len(sig.Args), "%s vector %d", sig.Key(), i)
					for j, a := range v.Args {
						got, err := types.TypeOf(a)
						require.NoError(t, err)
						if !got.Equal(sig.Args[j]) {
							t.Errorf("%s vector %d arg %d is %s", sig.Key(), i, j, got)
						}
					}
					res, err := types.TypeOf(v.Result)
					require.NoError(t, err)
					if !res.Equal(sig.Result) {
						t.Errorf("%s vector %d result is %s, want %s", sig.Key(), i, res, sig.Result)
					}
				}
			}
		})
	}
}

func TestCatalogue_NarrowInts(t *testing.T) {
	for _, cat := range Catalogues() {
		for _, sig := range cat.Signatures() {
			if !narrowInts(sig.Version) {
				continue
			}
			for i, v := range cat.Vectors(sig) {
				for _, x := range append(append([]types.Value(nil), v.Args...), v.Result) {
					if x.Base() != types.Int {
						continue
					}
					for c := 0; c < x.Len(); c++ {
						assert.LessOrEqual(t, math.Abs(float64(x.Int(c))), float64(1<<16),
							"%s %s vector %d", cat.Name(), sig.Key(), i)
					}
				}
			}
		}
	}

	sig, vs, err := GLSL().Lookup("op-add", types.IntType, types.IntType)
	require.NoError(t, err)
	require.True(t, narrowInts(sig.Version))
	var low bool
	for _, v := range vs {
		low = low || v.Args[0].Int(0) == -narrowIntMax
	}
	assert.True(t, low, "missing 16-bit boundary vector")

	assert.True(t, narrowInts(glsl.Version120))
	assert.False(t, narrowInts(glsl.Version130))
	assert.True(t, narrowInts(glsl.VersionES100))
	assert.False(t, narrowInts(glsl.VersionES300))
}

func TestCatalogue_Order(t *testing.T) {
	sigs := GLSL().Signatures()
	sorted := sort.SliceIsSorted(sigs, func(i, j int) bool { return lessSignature(sigs[i], sigs[j]) })
	assert.True(t, sorted)

	again := GLSL().Signatures()
	keys := func(ss []Signature) []string {
		out := make([]string, len(ss))
		for i, s := range ss {
			out[i] = s.Key()
		}
		return out
	}
	if diff := cmp.Diff(keys(sigs), keys(again)); diff != "" {
		t.Errorf("catalogue order unstable (-first +second):\n%s", diff)
	}
}

func TestCatalogue_Deterministic(t *testing.T) {
	a, b := GLSL(), GLSL()
	for _, sig := range a.Signatures() {
		va, vb := a.Vectors(sig), b.Vectors(sig)
		require.Len(t, vb, len(va), sig.Key())
		for i := range va {
			if va[i].key() != vb[i].key() || !va[i].Result.Equal(vb[i].Result) {
				t.Fatalf("%s vector %d differs between builds", sig.Key(), i)
			}
		}
	}
}

func TestCatalogue_Families(t *testing.T) {
	glslCat, es, fp64 := GLSL(), GLSLES(), FP64()

	for _, sig := range glslCat.Signatures() {
		assert.False(t, sig.Version.ES, sig.Key())
		assert.True(t, sig.Version.AtLeast(110) && !sig.Version.AtLeast(160), sig.Key())
		assert.Empty(t, sig.Extension, sig.Key())
	}
	for _, sig := range es.Signatures() {
		assert.True(t, sig.Version.ES, sig.Key())
	}
	for _, sig := range fp64.Signatures() {
		assert.Equal(t, ExtFP64, sig.Extension, sig.Key())
		assert.Equal(t, 64, sig.Width(), sig.Key())
	}

	sig, _, err := es.Lookup("op-add", types.Uvec2, types.Uvec2)
	require.NoError(t, err)
	assert.Equal(t, glsl.VersionES300, sig.Version)

	_, _, err = fp64.Lookup("sin", types.DoubleType)
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrUnknownSignature))
	_, _, err = fp64.Lookup("sqrt", types.Dvec3)
	assert.NoError(t, err)
}

func TestCatalogue_Versions(t *testing.T) {
	cat := GLSL()
	tests := []struct {
		name string
		args []*types.Type
		want glsl.Version
	}{
		{"radians", []*types.Type{types.FloatType}, glsl.Version110},
		{"trunc", []*types.Type{types.Vec2}, glsl.Version130},
		{"outerProduct", []*types.Type{types.Vec3, types.Vec2}, glsl.Version120},
		{"inverse", []*types.Type{types.Mat3}, glsl.Version140},
		{"determinant", []*types.Type{types.Mat2}, glsl.Version150},
		{"min", []*types.Type{types.Uvec3, types.UintType}, glsl.Version130},
	}
	for _, tt := range tests {
		sig, _, err := cat.Lookup(tt.name, tt.args...)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, sig.Version, sig.Key())
	}
}

// =============================================================================
// Lookup and evaluation
// =============================================================================

func TestCatalogue_LookupUnknown(t *testing.T) {
	_, _, err := GLSL().Lookup("radians", types.IntType)
	require.Error(t, err)
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrUnknownSignature))
}

func TestCatalogue_EvalEqual(t *testing.T) {
	cat := GLSL()
	a, b := types.Ints(0, 8, 89), types.Ints(4, -7, 33)

	eq, err := cat.Eval("equal", a, b)
	require.NoError(t, err)
	assert.True(t, eq.Equal(types.Bools(false, false, false)), eq.String())

	ne, err := cat.Eval("notEqual", a, b)
	require.NoError(t, err)
	assert.True(t, ne.Equal(types.Bools(true, true, true)), ne.String())
}

func TestCatalogue_Eval(t *testing.T) {
	cat := GLSL()
	tests := []struct {
		name string
		args []types.Value
		want types.Value
	}{
		{"radians", []types.Value{types.F(180)}, types.F(math.Pi)},
		{"op-add", []types.Value{types.Ints(1, 2), types.I(3)}, types.Ints(4, 5)},
		{"op-mult", []types.Value{types.Floats(2, 2, 1, 2, 3, 4), types.FloatVec(1, 1)}, types.FloatVec(4, 6)},
		{"op-mult", []types.Value{types.FloatVec(1, 1), types.Floats(2, 2, 1, 2, 3, 4)}, types.FloatVec(3, 7)},
		{"determinant", []types.Value{types.Floats(2, 2, 1, 2, 3, 4)}, types.F(-2)},
		{"inverse", []types.Value{types.Floats(2, 2, 2, 1, 1, 1)}, types.Floats(2, 2, 1, -1, -1, 2)},
		{"transpose", []types.Value{types.Floats(2, 3, 1, 2, 3, 4, 5, 6)}, types.Floats(3, 2, 1, 3, 5, 2, 4, 6)},
		{"cross", []types.Value{types.FloatVec(1, 0, 0), types.FloatVec(0, 1, 0)}, types.FloatVec(0, 0, 1)},
		{"mod", []types.Value{types.F(-1.5), types.F(1)}, types.F(0.5)},
		{"op-rshift", []types.Value{types.I(-8), types.I(1)}, types.I(-4)},
		{"op-mult", []types.Value{types.I(0x10000), types.I(0x10000)}, types.I(0)},
		{"any", []types.Value{types.Bools(false, true)}, types.B(true)},
		{"op-eq", []types.Value{types.FloatVec(1, 2), types.FloatVec(1, 2)}, types.B(true)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cat.Eval(tt.name, tt.args...)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCatalogue_EvalDivideByZero(t *testing.T) {
	_, err := GLSL().Eval("op-div", types.I(1), types.I(0))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrInfeasibleFixture))
}

// =============================================================================
// Registration
// =============================================================================

func TestCatalogue_RegisterReplaces(t *testing.T) {
	src := GLSL()
	sig, vs, err := src.Lookup("radians", types.FloatType)
	require.NoError(t, err)

	cat := NewCatalogue("test")
	cat.Register(sig, vs)
	cat.Register(sig, vs[:1])
	assert.Equal(t, 1, cat.Len())
	assert.Len(t, cat.Vectors(sig), 1)
}

func TestRadiansVectors(t *testing.T) {
	_, vs, err := GLSL().Lookup("radians", types.FloatType)
	require.NoError(t, err)

	var found bool
	for _, v := range vs {
		if v.Args[0].Float(0) == 180 {
			found = true
			assert.Equal(t, []float64{2.5}, v.Tolerance.ULPs)
			assert.Equal(t, float64(float32(math.Pi)), v.Result.Float(0))
		}
	}
	assert.True(t, found, "no radians(180.0) vector")

	var boundary, random bool
	for _, v := range vs {
		x := v.Args[0].Float(0)
		if math.IsInf(x, 1) {
			boundary = true
		}
		if x != math.Trunc(x) {
			random = true
		}
	}
	assert.True(t, boundary, "missing boundary vectors")
	assert.True(t, random, "missing random vectors")
}

func TestSignature_Invocation(t *testing.T) {
	sig, _, err := GLSL().Lookup("op-add", types.Vec2, types.FloatType)
	require.NoError(t, err)
	assert.Equal(t, "(a + b)", sig.Invocation("a", "b"))
	assert.Equal(t, "vec2-float", sig.ArgSuffix())
	assert.True(t, sig.IsOperator())

	sig, _, err = GLSL().Lookup("clamp", types.Vec3, types.FloatType, types.FloatType)
	require.NoError(t, err)
	assert.Equal(t, "clamp(x, lo, hi)", sig.Invocation("x", "lo", "hi"))
}

func TestSignature_EvalChecksTypes(t *testing.T) {
	sig, _, err := GLSL().Lookup("radians", types.FloatType)
	require.NoError(t, err)
	_, err = sig.Eval(types.FloatVec(1, 2))
	assert.True(t, fixturegen.IsKind(err, fixturegen.ErrUnknownSignature))
}
