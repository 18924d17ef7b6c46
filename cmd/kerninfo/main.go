// Command kerninfo prints properties of the built-in filter kernels.
//
// Usage:
//
//	kerninfo [flags] [kernel-name ...]
//
// Without arguments it prints info for all known kernels.
//
// Examples:
//
//	kerninfo gaussian
//	kerninfo -size 7 -sigma 1.5 gaussian mean
//	kerninfo -weights sobel-45
//	kerninfo -all
//	kerninfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pix/pix/kernel"
)

type kernelEntry struct {
	name  string
	sized bool // honours -size
	build func(size int, sigma float64) (kernel.Kernel, error)
}

func sobelEntry(a kernel.Angle) kernelEntry {
	return kernelEntry{fmt.Sprintf("sobel-%d", int(a)), false, func(int, float64) (kernel.Kernel, error) {
		return kernel.Sobel(a)
	}}
}

var registry = []kernelEntry{
	{"identity", true, func(size int, _ float64) (kernel.Kernel, error) { return kernel.Identity(size) }},
	{"mean", true, func(size int, _ float64) (kernel.Kernel, error) { return kernel.Mean(size) }},
	{"gaussian", true, kernel.Gaussian},
	{"sharpen", true, func(size int, _ float64) (kernel.Kernel, error) { return kernel.Sharpen(size) }},
	sobelEntry(kernel.Angle0),
	sobelEntry(kernel.Angle45),
	sobelEntry(kernel.Angle90),
	sobelEntry(kernel.Angle135),
	sobelEntry(kernel.Angle180),
	sobelEntry(kernel.Angle225),
	sobelEntry(kernel.Angle270),
	sobelEntry(kernel.Angle315),
}

func main() {
	size := flag.Int("size", 3, "side length for sized kernels (odd)")
	sigma := flag.Float64("sigma", 0, "gaussian sigma; <= 0 selects max(size/6, 0.5)")
	all := flag.Bool("all", false, "show all kernels")
	list := flag.Bool("list", false, "list available kernel names")
	weights := flag.Bool("weights", false, "also print the weight matrix")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kerninfo [flags] [kernel-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints size, weight sum and separability of filter kernels.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all kernels.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kerninfo gaussian mean\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -size 7 -sigma 1.5 gaussian\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -all\n")
		fmt.Fprintf(os.Stderr, "  kerninfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching kernels\n")
		os.Exit(1)
	}

	if err := printAnalysis(os.Stdout, entries, *size, *sigma, *weights); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string) []kernelEntry {
	byName := make(map[string]kernelEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []kernelEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown kernel %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAnalysis(w io.Writer, entries []kernelEntry, size int, sigma float64, showWeights bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Kernel\tSize\tSum\tMin\tMax\tSeparable\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---\t---\t---\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	var matrices []string
	for _, e := range entries {
		k, err := e.build(size, sigma)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		ws := k.Weights()
		lo, hi := ws[0], ws[0]
		for _, v := range ws {
			lo = min(lo, v)
			hi = max(hi, v)
		}

		label := e.name
		if e.name == "gaussian" {
			s := sigma
			if s <= 0 {
				s = kernel.DefaultSigma(size)
			}
			label = fmt.Sprintf("%s (s=%.2f)", e.name, s)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%t\n",
			label,
			k.Size(),
			k.Sum(),
			lo,
			hi,
			k.IsSeparable(),
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}

		if showWeights {
			matrices = append(matrices, formatWeights(label, k))
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	for _, m := range matrices {
		if _, err := fmt.Fprint(w, "\n"+m); err != nil {
			return err
		}
	}
	return nil
}

func formatWeights(label string, k kernel.Kernel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", label)
	for _, row := range k.Rows() {
		for i, v := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%8.4f", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
