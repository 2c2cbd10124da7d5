// Command microbench times the fixed-size transforms and optionally runs the
// arithmetic conformance checks.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/algo-microfft"
	"github.com/cwbudde/algo-microfft/conformance"
	"github.com/cwbudde/algo-microfft/internal/cpu"
	"github.com/cwbudde/algo-microfft/internal/kernels"
	m "github.com/cwbudde/algo-microfft/internal/math"
)

const (
	modeForward   = "forward"
	modeInverse   = "inverse"
	modeReal      = "real"
	modeRoundTrip = "roundtrip"
)

type benchResult struct {
	variant string
	nsPerOp float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "16,256,1024,4096,16384", "comma-separated sizes")
		iters      = flag.Int("iters", 1000, "benchmark iterations")
		warmup     = flag.Int("warmup", 50, "warmup iterations")
		mode       = flag.String("mode", modeForward, "benchmark mode: forward, inverse, real, roundtrip, all")
		seed       = flag.Int64("seed", 1, "rng seed")
		conform    = flag.Bool("conform", false, "run the conformance checks instead of benchmarks")
		configFile = flag.String("config", "", "conformance config file (YAML)")
	)
	flag.Parse()

	if *conform || *configFile != "" {
		os.Exit(runConformance(*configFile))
	}

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s cpu=%q iters=%d warmup=%d\n", features.Architecture, features.Brand, *iters, *warmup)
	fmt.Printf("%8s  %10s  %10s  %12s\n", "size", "mode", "variant", "ns/op")

	for _, n := range sizes {
		tr, err := microfft.Lookup(n)
		if err != nil {
			fmt.Printf("%8d  skipped: %v\n", n, err)
			continue
		}

		for _, runMode := range resolveModes(*mode) {
			results := benchmarkSize(rnd, tr, *iters, *warmup, runMode)

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				fmt.Printf("%8d  %10s  %10s  %12.1f\n", n, runMode, res.variant, res.nsPerOp)
			}
		}
	}
}

func runConformance(path string) int {
	cfg := conformance.DefaultConfig()

	if path != "" {
		var err error

		cfg, err = conformance.LoadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
	}

	report, err := conformance.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if err := report.WriteText(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if !report.Passed() {
		return 1
	}

	return 0
}

func benchmarkSize(rnd *rand.Rand, tr *microfft.Transform, iters, warmup int, mode string) []benchResult {
	n := tr.Len()

	src := make([]complex64, n)
	for i := range src {
		src[i] = complex(rnd.Float32(), rnd.Float32())
	}

	buf := make([]complex64, n)
	realBuf := make([]float32, n)

	run := func(op func()) float64 {
		for range warmup {
			op()
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			op()
		}

		return float64(time.Since(start).Nanoseconds()) / float64(iters)
	}

	reset := func() {
		copy(buf, src)
	}

	switch mode {
	case modeInverse:
		return []benchResult{{"shortcut", run(func() {
			reset()
			_ = tr.Inverse(buf)
		})}}
	case modeReal:
		return []benchResult{{"shortcut", run(func() {
			for i, v := range src {
				realBuf[i] = real(v)
			}

			_, _ = tr.Real(realBuf)
		})}}
	case modeRoundTrip:
		return []benchResult{{"shortcut", run(func() {
			reset()
			_ = tr.Forward(buf)
			_ = tr.Inverse(buf)
		})}}
	default:
		// The multiply variant applies every twiddle as a full complex multiply.
		twiddle := m.ComputeTwiddleTable(n)

		return []benchResult{
			{"shortcut", run(func() {
				reset()
				_ = tr.Forward(buf)
			})},
			{"multiply", run(func() {
				reset()
				kernels.ForwardReference(buf, twiddle)
			})},
		}
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{modeForward, modeInverse, modeReal, modeRoundTrip}
	case modeInverse, modeReal, modeRoundTrip, modeForward:
		return []string{mode}
	default:
		return []string{modeForward}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
