// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_constant_array_size writes parser tests of built-in functions used in array sizes.
//
// Usage:
//
//	gen_constant_array_size [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/constarraysize"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(constarraysize.New())
}
