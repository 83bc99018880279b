// Command sqeq solves quadratic equations a*x^2 + b*x + c = 0.
//
// Usage:
//
//	sqeq [flags] [a b c]
//
// With three arguments it solves that equation; use -- before a negative
// leading coefficient. Otherwise it draws -n random integer triples from
// [min, max] and solves each of them.
//
// Examples:
//
//	sqeq 1 -3 2
//	sqeq -mode reference 0 2 4
//	sqeq -- -1 0 4
//	sqeq -n 20 -seed 42
//	sqeq -legacy -n 5 -min -3 -max 3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-quadratic/internal/coeffgen"
	"github.com/cwbudde/algo-quadratic/quadratic"
)

type triple struct {
	a, b, c float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sqeq", flag.ContinueOnError)
	fs.SetOutput(stderr)

	count := fs.Int("n", 20, "number of random equations to solve")
	seed := fs.Uint64("seed", 0, "random seed (0 derives one from the clock)")
	lo := fs.Int("min", -10, "smallest random coefficient")
	hi := fs.Int("max", 10, "largest random coefficient")
	modeName := fs.String("mode", quadratic.ModeLinearFirst.String(), "degenerate handling: linear-first or reference")
	legacy := fs.Bool("legacy", false, "print one line per equation in the classic format (linear roots get a line of their own)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sqeq [flags] [a b c]\n\n")
		fmt.Fprintf(stderr, "Solves a*x^2 + b*x + c = 0 for the given or random coefficients.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sqeq 1 -3 2\n")
		fmt.Fprintf(stderr, "  sqeq -mode reference 0 2 4\n")
		fmt.Fprintf(stderr, "  sqeq -n 20 -seed 42\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	mode, err := quadratic.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	var eqs []triple
	switch fs.NArg() {
	case 0:
		if *seed == 0 {
			*seed = uint64(time.Now().UnixNano())
			fmt.Fprintf(stderr, "seed: %d\n", *seed)
		}
		eqs, err = generate(*count, *seed, *lo, *hi)
	case 3:
		eqs, err = parseTriple(fs.Args())
	default:
		err = fmt.Errorf("expected 3 coefficients, got %d", fs.NArg())
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	opt := quadratic.WithMode(mode)
	if *legacy {
		err = printLegacy(stdout, eqs, opt)
	} else {
		err = printTable(stdout, eqs, opt)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}

	return 0
}

func generate(n int, seed uint64, lo, hi int) ([]triple, error) {
	if n <= 0 {
		return nil, fmt.Errorf("-n must be > 0: %d", n)
	}

	g, err := coeffgen.New(coeffgen.WithSeed(seed), coeffgen.WithRange(lo, hi))
	if err != nil {
		return nil, err
	}

	eqs := make([]triple, n)
	for i := range eqs {
		eqs[i].a, eqs[i].b, eqs[i].c = g.Next()
	}
	return eqs, nil
}

func parseTriple(args []string) ([]triple, error) {
	var v [3]float64
	for i, s := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("coefficient %q: %w", s, err)
		}
		v[i] = f
	}
	return []triple{{v[0], v[1], v[2]}}, nil
}

func printLegacy(w io.Writer, eqs []triple, opt quadratic.Option) error {
	for _, eq := range eqs {
		r := quadratic.Solve(eq.a, eq.b, eq.c, opt)

		var err error
		switch r.Kind {
		case quadratic.KindInfinite:
			_, err = fmt.Fprintln(w, "an infinite number of roots ")
		case quadratic.KindLinear:
			_, err = fmt.Fprintf(w, "linear equation %f\n", r.X1)
		case quadratic.KindNone:
			_, err = fmt.Fprintln(w, "no roots ")
		default:
			_, err = fmt.Fprintf(w, "%d | % -5f | % -5f \n", r.Count(), r.X1, r.X2)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printTable(w io.Writer, eqs []triple, opt quadratic.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "a\tb\tc\tKind\tCount\tRoots\tResidual\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-\t-\t-\t----\t-----\t-----\t--------\n"); err != nil {
		return err
	}

	for _, eq := range eqs {
		r := quadratic.Solve(eq.a, eq.b, eq.c, opt)

		cnt := strconv.Itoa(r.Count())
		if r.Kind == quadratic.KindInfinite {
			cnt = "inf"
		}

		if _, err := fmt.Fprintf(tw, "%g\t%g\t%g\t%s\t%s\t%s\t%s\n",
			eq.a, eq.b, eq.c, r.Kind, cnt, formatValues(r.Values()), formatResidual(eq, r.Values()),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatValues(xs []float64) string {
	if len(xs) == 0 {
		return "-"
	}

	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'f', 6, 64)
	}
	return strings.Join(parts, " ")
}

// formatResidual reports the largest |a*x^2 + b*x + c| over the roots xs.
func formatResidual(eq triple, xs []float64) string {
	if len(xs) == 0 {
		return "-"
	}

	worst := 0.0
	for _, x := range xs {
		worst = math.Max(worst, math.Abs(quadratic.Residual(eq.a, eq.b, eq.c, x)))
	}
	return strconv.FormatFloat(worst, 'e', 2, 64)
}
