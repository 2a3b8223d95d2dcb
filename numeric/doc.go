// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package numeric produces and compares floating-point values with
// bit-level fidelity: IEEE-754 hex encodings, widening and narrowing,
// ULP spacing, per-operation tolerances and a seeded, documented
// pseudo-random source for sample data.
//
// # Random data
//
// Rand wraps the PCG generator of math/rand/v2 seeded with (seed,
// 0x9e3779b97f4a7c15). The sequence for a given seed is fixed, so
// fixtures generated from it are reproducible. Changing the generator or
// the way values are drawn changes emitted fixtures.
package numeric
