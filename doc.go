// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package fixturegen generates GL conformance test fixtures from compact,
// declarative descriptions of shading-language features.
//
// Every generator follows the same pipeline:
//
//	tables ──► enumerator ──► typed values ──► templates ──► files
//
// The subpackages provide each stage:
//   - glsl: language versions, shader stages and the stage availability oracle
//   - types: scalar, vector and matrix types and values
//   - numeric: bit-exact float handling, ULP tolerances, seeded random data
//   - builtin: built-in function signatures and their test vectors
//   - layout: uniform block layout under std140 and shared packing
//   - tmpl: text templates and GLSL literal helpers
//   - emit: path construction, atomic writes and the manifest
//   - gen: the generator interface and one package per generator family
//
// This package holds what all of them share: the error taxonomy and the
// library logger.
package fixturegen
