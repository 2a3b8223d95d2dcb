// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package emit places rendered fixtures on disk.
//
// Paths have the form spec/<feature>/<kind>/<dir>/<name>.<ext> and always
// use forward slashes. The Emitter writes each file through a temporary
// file and a rename, and reports every path on the manifest writer in
// emission order. In names-only mode it reports paths without rendering
// or writing anything.
package emit
