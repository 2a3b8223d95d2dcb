// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_interpolation_qualifier writes linker tests of interpolation qualifier matching.
//
// Usage:
//
//	gen_interpolation_qualifier [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/interpqualifier"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(interpqualifier.New())
}
