// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_uniform_initializer writes execution tests of uniform initializers.
//
// Usage:
//
//	gen_uniform_initializer [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/uniforminit"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(uniforminit.New())
}
