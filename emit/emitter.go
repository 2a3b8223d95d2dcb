// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/gogpu/fixturegen"
)

// Options configures an Emitter.
type Options struct {
	// Dir is the directory fixture paths are relative to. Empty means the
	// working directory.
	Dir string

	// NamesOnly reports paths without rendering or writing files.
	NamesOnly bool

	// Manifest receives one path per line. Nil discards the manifest.
	Manifest io.Writer
}

// Emitter writes fixtures and keeps the manifest of a single generator.
// It is safe for concurrent use; concurrent callers should emit into
// disjoint subtrees.
type Emitter struct {
	opts Options

	mu    sync.Mutex
	paths []string
	seen  map[string]struct{}
}

// New returns an Emitter configured by opts.
func New(opts Options) *Emitter {
	if opts.Manifest == nil {
		opts.Manifest = io.Discard
	}
	return &Emitter{opts: opts, seen: make(map[string]struct{})}
}

// NamesOnly reports whether the emitter is in names-only mode.
func (e *Emitter) NamesOnly() bool { return e.opts.NamesOnly }

// Emit renders and writes the fixture at path p, then appends p to the
// manifest. In names-only mode render is not called.
func (e *Emitter) Emit(p string, render func() ([]byte, error)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, dup := e.seen[p]; dup {
		return fixturegen.NewError(fixturegen.ErrIOFailure, "fixture %s emitted twice", p)
	}
	if !e.opts.NamesOnly {
		data, err := render()
		if err != nil {
			return errors.WithMessagef(err, "render %s", p)
		}
		if err := WriteFile(filepath.Join(e.opts.Dir, filepath.FromSlash(p)), data); err != nil {
			return err
		}
	}
	e.seen[p] = struct{}{}
	e.paths = append(e.paths, p)
	if _, err := fmt.Fprintln(e.opts.Manifest, p); err != nil {
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "write manifest")
	}
	return nil
}

// Paths returns the manifest so far, in emission order.
func (e *Emitter) Paths() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.paths...)
}

// MkdirAll creates dir and its parents. A directory created concurrently
// by another process is not an error.
func MkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		if info, statErr := os.Stat(dir); statErr == nil && info.IsDir() {
			return nil
		}
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "create directory %s", dir)
	}
	return nil
}

// WriteFile writes data to name through a temporary file in the same
// directory, so readers observe either the old or the new content.
func WriteFile(name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := MkdirAll(dir); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*")
	if err != nil {
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "create temporary file for %s", name)
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "write %s", name)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "close %s", name)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return fixturegen.Wrap(fixturegen.ErrIOFailure, err, "chmod %s", name)
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return fixturegen.Wrap(fixturegen.ErrIOFailure, errors.Wrap(err, "rename"), "replace %s", name)
	}
	return nil
}
