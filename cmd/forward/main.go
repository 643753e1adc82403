// Package main provides the forward CLI, a driver that evaluates built-in
// expressions and their derivatives with dual numbers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/forward/dual"
	"github.com/born-ml/forward/internal/config"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("forward: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return errUsage
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "forward %s\n", version)
		return nil
	case "list":
		for _, name := range catalogNames() {
			fmt.Fprintf(stdout, "%-12s %s\n", name, catalog[name].formula)
		}
		return nil
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "apply":
		return runApply(args[1:], stdout, stderr)
	case "partial":
		return runPartial(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "forward %s - forward-mode differentiation with dual numbers\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                          Show version")
	fmt.Fprintln(w, "  list                             List built-in expressions")
	fmt.Fprintln(w, "  eval [-x X] <name>               Value and derivative at x")
	fmt.Fprintln(w, "  apply [flags] <name> x1 x2 ...   Elementwise over seeded inputs")
	fmt.Fprintln(w, "  partial [-x1 A] [-x2 B] -wrt x1|x2")
	fmt.Fprintln(w, "                                   ln(x1) + x1*x2 - sin(x2), one seed")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Environment: FORWARD_PARALLEL, FORWARD_WORKERS, FORWARD_MIN_CHUNK")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func lookup(name string) (expression, error) {
	expr, ok := catalog[name]
	if !ok {
		return expression{}, fmt.Errorf("%w: unknown expression %q (known: %s)",
			errUsage, name, strings.Join(catalogNames(), ", "))
	}
	return expr, nil
}

func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return float32(v), nil
}

func runEval(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("eval", stderr)
	x := fs.Float64("x", 1, "point to evaluate at")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "eval: expected exactly one expression name")
		return errUsage
	}

	expr, err := lookup(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	value, deriv := dual.Derivative(expr.f, float32(*x))
	fmt.Fprintf(stdout, "f(x)  = %s at x = %g\n", expr.formula, float32(*x))
	fmt.Fprintf(stdout, "value = %g\n", value)
	fmt.Fprintf(stdout, "d/dx  = %g\n", deriv)
	return nil
}

func runApply(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := newFlagSet("apply", stderr)
	workers := fs.Int("workers", cfg.Workers, "number of worker goroutines")
	minChunk := fs.Int("min-chunk", cfg.MinChunkSize, "minimum elements per goroutine")
	sequential := fs.Bool("sequential", !cfg.Parallel, "disable parallel apply")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "apply: expected an expression name followed by inputs")
		return errUsage
	}

	cfg.Workers = *workers
	cfg.MinChunkSize = *minChunk
	cfg.Parallel = !*sequential
	if err := cfg.Validate(); err != nil {
		return err
	}

	expr, err := lookup(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	xs := make([]float32, 0, fs.NArg()-1)
	for _, s := range fs.Args()[1:] {
		v, err := parseFloat32(s)
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		xs = append(xs, v)
	}

	out := dual.Seeded(xs...).ApplyWith(expr.f, cfg.ParallelConfig())
	for i := 0; i < out.Len(); i++ {
		y := out.At(i)
		fmt.Fprintf(stdout, "x = %-10g value = %-14g d/dx = %g\n", xs[i], y.Primal, y.Tangent)
	}
	return nil
}

func runPartial(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("partial", stderr)
	x1 := fs.Float64("x1", 2, "value of x1")
	x2 := fs.Float64("x2", 5, "value of x2")
	wrt := fs.String("wrt", "x1", "variable to differentiate with respect to (x1 or x2)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	a, b := dual.Const(float32(*x1)), dual.Const(float32(*x2))
	switch *wrt {
	case "x1":
		a = dual.Var(a.Primal)
	case "x2":
		b = dual.Var(b.Primal)
	default:
		fmt.Fprintf(stderr, "partial: -wrt must be x1 or x2, got %q\n", *wrt)
		return errUsage
	}

	y := twoVar(a, b)
	fmt.Fprintf(stdout, "f(x1, x2) = ln(x1) + x1*x2 - sin(x2) at (%g, %g)\n", a.Primal, b.Primal)
	fmt.Fprintf(stdout, "value     = %g\n", y.Primal)
	fmt.Fprintf(stdout, "d/d%s     = %g\n", *wrt, y.Tangent)
	return nil
}
