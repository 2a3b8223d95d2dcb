// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_flat_interpolation writes parser tests of the flat qualifier on integer and double varyings.
//
// Usage:
//
//	gen_flat_interpolation [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/flatinterp"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(flatinterp.New())
}
