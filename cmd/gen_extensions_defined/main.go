// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_extensions_defined writes preprocessor tests of extension macros.
//
// Usage:
//
//	gen_extensions_defined [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/extdefined"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(extdefined.New())
}
