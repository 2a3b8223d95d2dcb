// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_outerproduct writes parser tests of the outerProduct result type.
//
// Usage:
//
//	gen_outerproduct [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/outerproduct"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(outerproduct.New())
}
