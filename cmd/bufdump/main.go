// Command bufdump demonstrates the ownership semantics of the buffer type:
// construction, deep copy, move, swap and release, with a diagnostic dump
// after each step.
//
// Usage:
//
//	bufdump [flags] [value ...]
//
// Without arguments it uses the values 1 2 3.
//
// Examples:
//
//	bufdump 0.5 1.5 2.5
//	bufdump -trace 1 2 3 4
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/algo-buf/buffer"
	"github.com/cwbudde/algo-buf/srcloc"
)

func main() {
	trace := flag.Bool("trace", false, "report the call site before each dump")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: bufdump [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Demonstrates buffer ownership semantics (copy, move, swap, release).\n")
		fmt.Fprintf(os.Stderr, "Without arguments it uses the values 1 2 3.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bufdump 0.5 1.5 2.5\n")
		fmt.Fprintf(os.Stderr, "  bufdump -trace 1 2 3 4\n")
	}
	flag.Parse()

	values, err := parseValues(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	dump := func(b *buffer.Buffer, label string) {
		if *trace {
			srcloc.Report(os.Stdout, srcloc.Caller(1))
		}
		b.Dump(os.Stdout, label)
	}

	b1 := buffer.FromValues(values...)
	dump(b1, "b1")

	// Deep copy: b2 gets its own allocation, b1 is untouched.
	b2 := b1.Clone()
	dump(b2, "b2 (clone of b1)")
	dump(b1, "b1 (after clone)")

	// Move: b3 takes over b2's allocation, b2 is left empty.
	b3 := buffer.Take(b2)
	dump(b3, "b3 (moved from b2)")
	dump(b2, "b2 (after move)")

	// Swap: b1 and the now-empty b2 exchange allocations without copying.
	b1.Swap(b2)
	dump(b1, "b1 (after swap)")
	dump(b2, "b2 (after swap)")

	b3.Release()
	dump(b3, "b3 (after release)")
}

func parseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return []float64{1, 2, 3}, nil
	}
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
