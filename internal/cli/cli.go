// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package cli holds the command-line surface shared by the generator
// binaries: flag parsing, logger setup and exit codes.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
)

// Options are the flags every generator binary accepts.
type Options struct {
	NamesOnly bool
	Output    string
	Seed      uint64
	Verbose   bool
}

// Register defines the common flags on fs and returns the options they
// fill in.
func Register(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.BoolVar(&o.NamesOnly, "names-only", false, "print fixture paths without writing files")
	fs.StringVar(&o.Output, "o", ".", "output root directory")
	fs.Uint64Var(&o.Seed, "seed", 0, "override the random seed (0 keeps the per-generator default)")
	fs.BoolVar(&o.Verbose, "v", false, "log debug messages, including skipped fixtures")
	return o
}

// Level returns the log level for a standard error stream.
func Level(terminal, verbose bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case terminal:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// NewLogger returns a text logger writing to w. Its level is chosen by
// Level, w counting as a terminal when it is one.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	terminal := false
	if f, ok := w.(*os.File); ok {
		terminal = term.IsTerminal(int(f.Fd()))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: Level(terminal, verbose)}))
}

// Parse parses the command line of a generator binary. Positional
// arguments are rejected.
func Parse(name string, args []string, stderr io.Writer) (*Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}
	o := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, fixturegen.Wrap(fixturegen.ErrInvalidConfig, err, "parse flags")
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fixturegen.NewError(fixturegen.ErrInvalidConfig, "unexpected argument %q", fs.Arg(0))
	}
	return o, nil
}

// Run runs g as a binary would: the manifest goes to stdout and
// diagnostics to stderr. It returns the process exit code.
func Run(g gen.Generator, args []string, stdout, stderr io.Writer) int {
	o, err := Parse(g.Name(), args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "%s: %v\n", g.Name(), err)
		return 2
	}
	fixturegen.SetLogger(NewLogger(stderr, o.Verbose))
	defer fixturegen.SetLogger(nil)

	e := emit.New(emit.Options{Dir: o.Output, NamesOnly: o.NamesOnly, Manifest: stdout})
	if _, err := gen.Run(g, gen.NewEnv(o.Seed), e); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", g.Name(), err)
		return 1
	}
	return 0
}

// Main runs g with the process arguments and exits.
func Main(g gen.Generator) {
	os.Exit(Run(g, os.Args[1:], os.Stdout, os.Stderr))
}
