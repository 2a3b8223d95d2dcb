// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command gen_bit_encoding writes execution tests of the float bit encoding functions.
//
// Usage:
//
//	gen_bit_encoding [-names-only] [-o dir] [-seed n] [-v]
//
// The paths of the written fixtures are printed to standard output, one per
// line.
package main

import (
	"github.com/gogpu/fixturegen/gen/bitencoding"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	cli.Main(bitencoding.New())
}
