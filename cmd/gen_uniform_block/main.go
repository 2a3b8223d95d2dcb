// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_uniform_block writes execution tests of random uniform block layouts.
//
// Usage:
//
//	gen_uniform_block [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/uniformblock"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(uniformblock.New())
}
