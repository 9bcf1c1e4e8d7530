// Command xcorrinfo prints the correlation strategy chosen for given
// signal/template length pairs, along with the transform geometry and the
// SIMD kernels available on this machine.
//
// Usage:
//
//	xcorrinfo [flags] [xLen:hLen ...]
//
// Without arguments it prints a table for a spread of representative pairs.
//
// Examples:
//
//	xcorrinfo 48000:512
//	xcorrinfo -direct-threshold 128 1000000:256 1000000:4096
//	xcorrinfo -cpu
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-correlate/dsp/correlate"
	"github.com/cwbudde/algo-correlate/internal/cpu"
	"github.com/cwbudde/algo-correlate/internal/vecmath/registry"
)

var defaultPairs = []lengthPair{
	{1024, 32},
	{8192, 256},
	{65536, 1024},
	{1 << 20, 1024},
	{1 << 20, 1 << 16},
}

type lengthPair struct {
	xLen int
	hLen int
}

func main() {
	directThreshold := flag.Int("direct-threshold", 0, "template length bound for the direct method (0 = default)")
	overlapRatio := flag.Int("overlap-ratio", 0, "xLen/hLen ratio above which overlap-save is considered (0 = default)")
	maxFFT := flag.Int("max-fft", 0, "largest whole-signal transform length (0 = default)")
	showCPU := flag.Bool("cpu", false, "print detected CPU features and registered kernels")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: xcorrinfo [flags] [xLen:hLen ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the correlation strategy chosen for length pairs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints a table for representative pairs.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  xcorrinfo 48000:512\n")
		fmt.Fprintf(os.Stderr, "  xcorrinfo -direct-threshold 128 1000000:4096\n")
		fmt.Fprintf(os.Stderr, "  xcorrinfo -cpu\n")
	}
	flag.Parse()

	if *showCPU {
		printCPU()
		return
	}

	pairs := defaultPairs
	if args := flag.Args(); len(args) > 0 {
		parsed, err := parsePairs(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		pairs = parsed
	}

	var opts []correlate.Option
	if *directThreshold > 0 {
		opts = append(opts, correlate.WithDirectThreshold(*directThreshold))
	}
	if *overlapRatio > 0 {
		opts = append(opts, correlate.WithOverlapSaveRatio(*overlapRatio))
	}
	if *maxFFT > 0 {
		opts = append(opts, correlate.WithMaxSingleFFT(*maxFFT))
	}

	printTable(pairs, opts)
}

func parsePairs(args []string) ([]lengthPair, error) {
	pairs := make([]lengthPair, 0, len(args))
	for _, arg := range args {
		xs, hs, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q (expected xLen:hLen)", arg)
		}
		xLen, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("invalid signal length in %q: %w", arg, err)
		}
		hLen, err := strconv.Atoi(hs)
		if err != nil {
			return nil, fmt.Errorf("invalid template length in %q: %w", arg, err)
		}
		if xLen <= 0 || hLen <= 0 {
			return nil, fmt.Errorf("lengths in %q must be positive", arg)
		}
		pairs = append(pairs, lengthPair{xLen, hLen})
	}
	return pairs, nil
}

func printTable(pairs []lengthPair, opts []correlate.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal\tTemplate\tOutput\tMethod\tFFT Size\tStep\n")
	fmt.Fprintf(tw, "------\t--------\t------\t------\t--------\t----\n")

	for _, p := range pairs {
		c, err := correlate.New(p.xLen, p.hLen, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: x=%d h=%d: %v\n", p.xLen, p.hLen, err)
			continue
		}

		fftSize, step := "-", "-"
		switch c.Method() {
		case correlate.MethodFFT:
			if f, err := correlate.NewFFT(p.xLen, p.hLen); err == nil {
				fftSize = strconv.Itoa(f.FFTSize())
				f.Close()
			}
		case correlate.MethodOverlapSave:
			if o, err := correlate.NewOverlapSave(p.xLen, p.hLen); err == nil {
				fftSize = strconv.Itoa(o.FFTSize())
				step = strconv.Itoa(o.StepSize())
				o.Close()
			}
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\n",
			p.xLen, p.hLen, p.xLen+p.hLen-1, c.Method(), fftSize, step)

		c.Close()
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printCPU() {
	feat := cpu.DetectFeatures()

	fmt.Printf("SIMD level: %s (%d lanes)\n", feat.Best(), feat.Best().Lanes())
	fmt.Printf("SSE2:    %v\n", feat.HasSSE2)
	fmt.Printf("AVX:     %v\n", feat.HasAVX)
	fmt.Printf("AVX2:    %v\n", feat.HasAVX2)
	fmt.Printf("AVX-512: %v\n", feat.HasAVX512)
	fmt.Printf("NEON:    %v\n", feat.HasNEON)

	fmt.Println("\nRegistered kernels (priority order):")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tLevel\tPriority\tUsable\n")
	fmt.Fprintf(tw, "----\t-----\t--------\t------\n")
	for _, e := range registry.Global.ListEntries() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%v\n", e.Name, e.SIMDLevel, e.Priority, cpu.Supports(feat, e.SIMDLevel))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
