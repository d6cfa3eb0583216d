// Command convinfo prints output geometry and validation results for 2-D
// cross-correlation parameters.
//
// Usage:
//
//	convinfo [flags]
//
// Without -sweep it reports a single kernel/stride combination.
//
// Examples:
//
//	convinfo -size 28 -kernel 3 -stride 2 -padding 1
//	convinfo -size 7 -sweep
//	convinfo -size 32 -kernel 5 -verify
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-conv2d/dsp/conv2d"
	"github.com/cwbudde/algo-conv2d/dsp/core"
)

type combo struct {
	size    int
	kernel  int
	stride  int
	padding int
}

func main() {
	size := flag.Int("size", 28, "image side length before padding")
	kernel := flag.Int("kernel", 3, "kernel side length")
	stride := flag.Int("stride", 1, "window step")
	padding := flag.Int("padding", 0, "zero border added on each side")
	sweep := flag.Bool("sweep", false, "list every kernel/stride combination for -size and -padding")
	validOnly := flag.Bool("valid", false, "with -sweep, only list accepted combinations")
	verify := flag.Bool("verify", false, "run direct and FFT evaluation on a ramp image and report the difference")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints output geometry of 2-D cross-correlation and whether the\n")
		fmt.Fprintf(os.Stderr, "kernel/stride combination is accepted.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  convinfo -size 28 -kernel 3 -stride 2 -padding 1\n")
		fmt.Fprintf(os.Stderr, "  convinfo -size 7 -sweep\n")
		fmt.Fprintf(os.Stderr, "  convinfo -size 32 -kernel 5 -verify\n")
	}
	flag.Parse()

	if *size <= 0 || *padding < 0 {
		fmt.Fprintf(os.Stderr, "error: -size must be positive and -padding non-negative\n")
		os.Exit(1)
	}

	var combos []combo
	if *sweep {
		combos = sweepCombos(*size, *padding, *validOnly)
	} else {
		combos = []combo{{*size, *kernel, *stride, *padding}}
	}

	printGeometry(combos)

	if *verify {
		for _, c := range combos {
			if err := verifyStrategies(c); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

func sweepCombos(size, padding int, validOnly bool) []combo {
	side := size + 2*padding

	var result []combo
	for k := 1; k <= side; k++ {
		for s := 1; s <= side; s++ {
			if validOnly && conv2d.CheckGeometry(side, k, s) != nil {
				continue
			}
			result = append(result, combo{size, k, s, padding})
		}
	}
	return result
}

func printGeometry(combos []combo) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Size\tPadding\tPadded\tKernel\tStride\tOutput\tStatus\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t-------\t------\t------\t------\t------\t------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, c := range combos {
		side := c.size + 2*c.padding
		status := "ok"
		output := "-"
		if err := conv2d.CheckGeometry(side, c.kernel, c.stride); err != nil {
			status = err.Error()
		} else {
			n := conv2d.OutputSize(side, c.kernel, c.stride)
			output = fmt.Sprintf("%dx%d", n, n)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			c.size, c.padding, side, c.kernel, c.stride, output, status,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// verifyStrategies correlates a ramp image with a ramp kernel using both
// strategies and prints the largest absolute difference.
func verifyStrategies(c combo) error {
	side := c.size + 2*c.padding
	if conv2d.CheckGeometry(side, c.kernel, c.stride) != nil {
		return nil
	}

	image := ramp(c.size, 1.0/float64(c.size*c.size))
	kernel := ramp(c.kernel, 1.0/float64(c.kernel*c.kernel))
	opts := []conv2d.Option{conv2d.WithStride(c.stride), conv2d.WithPadding(c.padding)}

	direct, err := conv2d.Correlate(image, kernel, append(opts, conv2d.WithStrategy(conv2d.StrategyDirect))...)
	if err != nil {
		return fmt.Errorf("direct: %w", err)
	}
	fft, err := conv2d.Correlate(image, kernel, append(opts, conv2d.WithStrategy(conv2d.StrategyFFT))...)
	if err != nil {
		return fmt.Errorf("fft: %w", err)
	}

	var maxDiff float64
	for i := range direct.Data {
		maxDiff = math.Max(maxDiff, math.Abs(direct.Data[i]-fft.Data[i]))
	}

	fmt.Printf("size=%d kernel=%d stride=%d padding=%d: max |direct-fft| = %.3g\n",
		c.size, c.kernel, c.stride, c.padding, maxDiff)
	return nil
}

func ramp(side int, step float64) *core.Array {
	a := core.NewArray(side, side)
	for i := range a.Data {
		a.Data[i] = float64(i) * step
	}
	return a
}
