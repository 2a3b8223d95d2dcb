// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_vs_input writes execution tests of 64-bit vertex shader inputs.
//
// Usage:
//
//	gen_vs_input [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/vsinput"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(vsinput.New())
}
