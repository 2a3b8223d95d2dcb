// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package layout models uniform blocks and computes their memory layout.
//
// Under std140 every offset, array stride and matrix stride is fully
// determined and Compute reports it. Under shared packing the layout is
// chosen by the implementation; Compute then reports only what does not
// depend on it (names, types, array sizes and matrix orientation), and
// every offset and stride is Unknown.
//
// Matrix orientation is inherited from block to field to structure member
// unless a field overrides it.
package layout
