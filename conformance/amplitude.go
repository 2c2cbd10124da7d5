package conformance

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-microfft"
)

// AmplitudeResult compares the amplitude spectrum of a sampled sine with the
// gonum real FFT of the same samples.
type AmplitudeResult struct {
	Size int
	Bin  int

	// Got and Want are the rounded amplitudes of bins 0..Size/2-1.
	Got  []uint32
	Want []uint32

	// MaxAbsDiff is the largest unrounded amplitude difference.
	MaxAbsDiff float64
	Match      bool
}

// SineBin is the frequency bin used by the amplitude scenario.
const SineBin = 3

// Sine returns n samples of sin(2π·bin·i/n) computed in float32.
func Sine(n, bin int) []float32 {
	out := make([]float32, n)

	interval := 1 / float32(n)
	for i := range out {
		out[i] = float32(math.Sin(float64(2 * math.Pi * float32(bin) * interval * float32(i))))
	}

	return out
}

// Amplitudes returns |z[k]| for each bin.
func Amplitudes(z []complex64) []float64 {
	re := make([]float64, len(z))
	im := make([]float64, len(z))

	for i, v := range z {
		re[i] = float64(real(v))
		im[i] = float64(imag(v))
	}

	out := make([]float64, len(z))
	vecmath.Magnitude(out, re, im)

	return out
}

// CompareAmplitudes runs the sine scenario for size n. A sine at bin b of
// amplitude 1 has magnitude n/2 at bin b and zero elsewhere.
func CompareAmplitudes(n int, tolerance float64) (AmplitudeResult, error) {
	res := AmplitudeResult{Size: n, Bin: SineBin}
	if n/2 <= SineBin {
		return res, fmt.Errorf("%w: size %d too small for bin %d", errInvalidConfig, n, SineBin)
	}

	tr, err := microfft.Lookup(n)
	if err != nil {
		return res, err
	}

	samples := Sine(n, SineBin)

	wide := make([]float64, n)
	for i, v := range samples {
		wide[i] = float64(v)
	}

	spectrum, err := tr.Real(samples)
	if err != nil {
		return res, err
	}

	// Bin 0 carries the Nyquist term in its imaginary part.
	spectrum[0] = complex(real(spectrum[0]), 0)

	got := Amplitudes(spectrum)

	coeff := fourier.NewFFT(n).Coefficients(nil, wide)

	res.Got = make([]uint32, len(got))
	res.Want = make([]uint32, len(got))
	res.Match = true

	limit := tolerance * float64(n) / 2

	for k, g := range got {
		w := math.Hypot(real(coeff[k]), imag(coeff[k]))

		res.Got[k] = uint32(math.Round(g))
		res.Want[k] = uint32(math.Round(w))

		d := math.Abs(g - w)
		res.MaxAbsDiff = max(res.MaxAbsDiff, d)

		if d > limit || res.Got[k] != res.Want[k] {
			res.Match = false
		}
	}

	return res, nil
}
