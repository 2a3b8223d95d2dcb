// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_builtin_uniform writes execution tests of built-in functions fed through uniforms.
//
// Usage:
//
//	gen_builtin_uniform [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/builtinuniform"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(builtinuniform.New())
}
