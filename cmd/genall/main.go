// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Command genall runs fixture generators in parallel.
//
// Usage:
//
//	genall [-config genall.yaml] [-o dir] [-j n] [-seed n] [-names-only] [-v]
//
// Flags take precedence over the configuration file. Every generator's
// paths are computed first; genall fails without writing anything when two
// generators claim the same path. The combined manifest is printed to
// standard output in generator order.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/fixturegen"
	"github.com/gogpu/fixturegen/emit"
	"github.com/gogpu/fixturegen/gen"
	"github.com/gogpu/fixturegen/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("genall", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	jobs := fs.Int("j", 0, "generators run concurrently (default: number of CPUs)")
	opts := cli.Register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "genall: unexpected argument %q\n", fs.Arg(0))
		return 2
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			fmt.Fprintf(stderr, "genall: %v\n", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = opts.Output
		case "j":
			cfg.Jobs = *jobs
		case "seed":
			cfg.Seed = opts.Seed
		case "names-only":
			cfg.NamesOnly = opts.NamesOnly
		}
	})

	fixturegen.SetLogger(cli.NewLogger(stderr, opts.Verbose))
	defer fixturegen.SetLogger(nil)

	manifest, err := generate(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(stderr, "genall: %v\n", err)
		return 1
	}
	for _, p := range manifest {
		fmt.Fprintln(stdout, p)
	}
	return 0
}

// generate runs the configured generators and returns the combined
// manifest.
func generate(ctx context.Context, cfg Config) ([]string, error) {
	gens, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	paths, err := runAll(ctx, cfg, gens, true)
	if err != nil {
		return nil, err
	}
	manifest, err := checkPaths(gens, paths)
	if err != nil {
		return nil, err
	}
	if cfg.NamesOnly {
		return manifest, nil
	}
	if _, err := runAll(ctx, cfg, gens, false); err != nil {
		return nil, err
	}
	return manifest, nil
}

// checkPaths concatenates the paths of every generator, failing when two
// generators claim the same path.
func checkPaths(gens []gen.Generator, paths [][]string) ([]string, error) {
	owner := make(map[string]string)
	var manifest []string
	for i, g := range gens {
		for _, p := range paths[i] {
			if prev, ok := owner[p]; ok {
				return nil, fixturegen.NewError(fixturegen.ErrIOFailure, "%s is produced by both %s and %s", p, prev, g.Name())
			}
			owner[p] = g.Name()
			manifest = append(manifest, p)
		}
	}
	return manifest, nil
}

// runAll runs every generator with at most cfg.Jobs at a time and returns
// the paths of each.
func runAll(ctx context.Context, cfg Config, gens []gen.Generator, namesOnly bool) ([][]string, error) {
	paths := make([][]string, len(gens))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, gn := range gens {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e := emit.New(emit.Options{Dir: cfg.Output, NamesOnly: namesOnly})
			if _, err := gen.Run(gn, gen.NewEnv(cfg.Seed), e); err != nil {
				return err
			}
			paths[i] = e.Paths()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
