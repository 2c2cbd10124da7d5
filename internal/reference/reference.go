// Package reference provides O(n²) discrete Fourier transforms used as test
// oracles. All arithmetic is carried out in float64.
package reference

import (
	"math"
)

// NaiveDFT computes the forward DFT of src, X[k] = Σ x[n]·exp(-2πikn/N).
func NaiveDFT(src []complex64) []complex64 {
	wide := widen(src)
	return narrow(NaiveDFT128(wide))
}

// NaiveIDFT computes the normalized inverse DFT of src,
// x[n] = (1/N) Σ X[k]·exp(+2πikn/N).
func NaiveIDFT(src []complex64) []complex64 {
	wide := widen(src)
	return narrow(NaiveIDFT128(wide))
}

// NaiveDFT128 is the complex128 form of NaiveDFT.
func NaiveDFT128(src []complex128) []complex128 {
	return dft(src, -1)
}

// NaiveIDFT128 is the complex128 form of NaiveIDFT.
func NaiveIDFT128(src []complex128) []complex128 {
	out := dft(src, 1)
	if len(out) == 0 {
		return out
	}

	scale := 1 / float64(len(out))
	for i := range out {
		out[i] *= complex(scale, 0)
	}

	return out
}

// RealDFT computes the forward DFT of a real sequence and returns the
// non-redundant half spectrum, bins 0..N/2 inclusive.
func RealDFT(src []float32) []complex128 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex(float64(v), 0)
	}

	full := NaiveDFT128(wide)

	return full[:len(src)/2+1]
}

func dft(src []complex128, sign float64) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for t := range n {
			// Reduce k*t mod n before the division to keep the angle small.
			angle := sign * 2 * math.Pi * float64((k*t)%n) / float64(n)
			sin, cos := math.Sincos(angle)
			sum += src[t] * complex(cos, sin)
		}

		out[k] = sum
	}

	return out
}

func widen(src []complex64) []complex128 {
	out := make([]complex128, len(src))
	for i, v := range src {
		out[i] = complex128(v)
	}

	return out
}

func narrow(src []complex128) []complex64 {
	out := make([]complex64, len(src))
	for i, v := range src {
		out[i] = complex64(v)
	}

	return out
}
