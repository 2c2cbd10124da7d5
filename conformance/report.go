package conformance

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-microfft/internal/cpu"
)

// Report is the outcome of Run. Divergence in the rotation and engine checks
// is reported but does not fail the run; epsilon and amplitude mismatches do.
type Report struct {
	Features cpu.Features
	MayFuse  bool

	Epsilon         float32
	HypotDifference float64

	RotationSamples int
	Rotation        []Divergence

	ButterflyMultiply complex64
	ButterflyRotate   complex64

	Engines    []EngineResult
	Amplitudes []AmplitudeResult
}

// Passed reports whether the epsilon, hypot and amplitude checks succeeded.
func (r *Report) Passed() bool {
	if r.Epsilon != X86MachineEpsilon32 || r.HypotDifference >= 1e-10 {
		return false
	}

	for _, a := range r.Amplitudes {
		if !a.Match {
			return false
		}
	}

	return true
}

// Run executes every check for the sizes in cfg.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Features:        cpu.DetectFeatures(),
		MayFuse:         cpu.MayFuseMultiplyAdd(),
		Epsilon:         MachineEpsilon32(),
		HypotDifference: HypotDifference(2, 3),
	}

	samples := RotationSamples(cfg.Samples, cfg.Seed)
	r.RotationSamples = len(samples)
	r.Rotation = CompareRotation(samples)
	r.ButterflyMultiply, r.ButterflyRotate = ButterflyRotation()

	for _, n := range cfg.sizes() {
		r.Engines = append(r.Engines, CompareEngine(n, cfg.Seed+int64(n)))

		if n/2 <= SineBin {
			continue
		}

		a, err := CompareAmplitudes(n, cfg.Tolerance)
		if err != nil {
			return nil, fmt.Errorf("amplitude check for size %d: %w", n, err)
		}

		r.Amplitudes = append(r.Amplitudes, a)
	}

	return r, nil
}

// WriteText writes a human-readable summary of r to w.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	f := r.Features
	fmt.Fprintf(tw, "arch\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "cpu\t%s %s (family %d)\n", f.Vendor, f.Brand, f.Family)
	fmt.Fprintf(tw, "simd\tsse2=%v avx=%v avx2=%v avx512=%v neon=%v\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON)
	fmt.Fprintf(tw, "fma\t%v (compiler may fuse: %v)\n", f.HasFMA, r.MayFuse)
	fmt.Fprintf(tw, "machine epsilon\t%g (x86 %g)\n", r.Epsilon, X86MachineEpsilon32)
	fmt.Fprintf(tw, "hypot difference\t%g\n", r.HypotDifference)
	fmt.Fprintf(tw, "rotation\t%d of %d samples diverge\n", len(r.Rotation), r.RotationSamples)
	fmt.Fprintf(tw, "butterfly\tmultiply %v rotate %v equal %v\n",
		r.ButterflyMultiply, r.ButterflyRotate, sameBits(r.ButterflyMultiply, r.ButterflyRotate))

	for _, d := range r.Rotation {
		fmt.Fprintf(tw, "  diverges\t%v\tmultiply %v\trotate %v\n", d.Input, d.Multiply, d.Rotate)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "size\tengine mismatches\tengine max diff\tamplitudes match\tamplitude max diff")

	amps := make(map[int]AmplitudeResult, len(r.Amplitudes))
	for _, a := range r.Amplitudes {
		amps[a.Size] = a
	}

	for _, e := range r.Engines {
		match, diff := "-", "-"
		if a, ok := amps[e.Size]; ok {
			match = fmt.Sprint(a.Match)
			diff = fmt.Sprintf("%.3g", a.MaxAbsDiff)
		}

		fmt.Fprintf(tw, "%d\t%d\t%.3g\t%s\t%s\n", e.Size, e.Mismatches, e.MaxAbsDiff, match, diff)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if !r.Passed() {
		_, err := fmt.Fprintln(w, "\nFAIL")
		return err
	}

	_, err := fmt.Fprintln(w, "\nPASS")

	return err
}
