// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_shader_precision writes execution tests of GL_ARB_shader_precision.
//
// Usage:
//
//	gen_shader_precision [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/shaderprecision"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(shaderprecision.New())
}
