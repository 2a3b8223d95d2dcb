// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_const_builtin writes execution tests of built-in functions in constant expressions.
//
// Usage:
//
//	gen_const_builtin [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/constbuiltin"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(constbuiltin.New())
}
