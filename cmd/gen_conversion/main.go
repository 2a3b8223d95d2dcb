// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_conversion writes tests of conversions to and from double.
//
// Usage:
//
//	gen_conversion [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/conversion"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(conversion.New())
}
