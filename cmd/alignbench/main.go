// Command alignbench times element-wise float32 addition on buffers that are
// 32-byte aligned, 16 bytes off and 11 bytes off, comparing a scalar loop
// with an 8-wide vector kernel.
//
// Usage:
//
//	alignbench [flags] <vector_size>
//
// vector_size must be a positive multiple of 8.
//
// Examples:
//
//	alignbench 1000000
//	alignbench -seed 42 -verify 4096
//	alignbench -generic 1000000
//	alignbench -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-alignbench/internal/arena"
	"github.com/cwbudde/algo-alignbench/internal/bench"
	"github.com/cwbudde/algo-alignbench/internal/cpu"
	"github.com/cwbudde/algo-alignbench/internal/kernel"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
	"github.com/cwbudde/algo-alignbench/internal/sample"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("alignbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	seed := fs.Int64("seed", 0, "seed for the sample generator (0 seeds from the clock)")
	generic := fs.Bool("generic", false, "disable vector strategies")
	verify := fs.Bool("verify", false, "check every result against a float64 reference")
	list := fs.Bool("list", false, "list the strategies available on this CPU")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: alignbench [flags] <vector_size>\n\n")
		fmt.Fprintf(stderr, "Times scalar and SIMD float32 addition at 32, 16 and 11 byte alignment.\n")
		fmt.Fprintf(stderr, "vector_size must be a positive multiple of %d.\n\n", registry.VectorWidth)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	features := cpu.DetectFeatures()
	if *generic {
		features.ForceGeneric = true
	}

	if *list {
		if err := printStrategies(stdout, features); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return 1
	}

	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "invalid vector size %q\n", fs.Arg(0))
		return 1
	}
	if n%registry.VectorWidth != 0 {
		fmt.Fprintf(stderr, "Vector size must be a multiple of %d.\n", registry.VectorWidth)
		return 1
	}
	if n <= 0 {
		fmt.Fprintf(stderr, "Vector size must be positive.\n")
		return 1
	}

	if err := bench.WriteHeader(stdout, n); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	src := sample.Generate(sample.NewRand(*seed), 2*n)

	layout, err := arena.NewLayout(n)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	runner := bench.New(
		bench.WithWriter(stdout),
		bench.WithFeatures(features),
		bench.WithVerify(*verify),
	)
	if _, err := runner.RunAll(src, layout, bench.Conditions); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printStrategies(w io.Writer, features cpu.Features) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Strategy\tFamily\tLevel\tAlignment\tWidth\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--------\t------\t-----\t---------\t-----\n"); err != nil {
		return err
	}
	for _, e := range kernel.Strategies(features) {
		align := "any"
		if e.Alignment > 1 {
			align = fmt.Sprintf("%d", e.Alignment)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", e.Name, e.Family, e.SIMDLevel, align, e.Width); err != nil {
			return err
		}
	}
	return tw.Flush()
}
