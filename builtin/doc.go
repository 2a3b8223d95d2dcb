// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package builtin describes the built-in functions and operators of the
// shading language together with test vectors for each overload.
//
// A Catalogue maps each Signature (operation name plus argument types) to
// its TestVectors. Catalogues are built explicitly, one per language
// family:
//
//	cat := builtin.GLSL()   // desktop GLSL 1.10 - 1.50
//	cat := builtin.GLSLES() // GLSL ES 1.00 and 3.00
//	cat := builtin.FP64()   // double precision, GL_ARB_gpu_shader_fp64
//
// Every signature carries an implementation, so a catalogue also serves as
// a constant evaluator:
//
//	v, err := cat.Eval("equal", types.Ints(0, 8, 89), types.Ints(4, -7, 33))
//
// Test vectors combine nominal inputs for each operation, boundary values of
// every argument's base type, documented precision corners and a few
// pseudo-random inputs seeded from the catalogue and operation names.
// Expected results are computed in float64 and rounded once to the result
// type. Vectors whose inputs or results are not finite are kept; generators
// that cannot express them filter them out.
package builtin
