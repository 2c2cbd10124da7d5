package microfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/dsp/fourier"

	m "github.com/cwbudde/algo-microfft/internal/math"
	"github.com/cwbudde/algo-microfft/internal/reference"
)

// Shared test helper functions used across multiple test files

// naiveLimit is the largest size checked against the O(n²) reference DFT;
// larger sizes are checked against gonum.
const naiveLimit = 2048

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}

	return out
}

func randomFloat32(n int, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}

	return out
}

func forwardTol(n int) float64 {
	return 5e-6 * float64(m.Log2(n)+1) * math.Sqrt(float64(n))
}

func roundTripTol(n int) float64 {
	return 1e-5 * float64(m.Log2(n)+1)
}

func referenceDFT(src []complex64) []complex128 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	if len(src) <= naiveLimit {
		return reference.NaiveDFT128(wide)
	}

	return fourier.NewCmplxFFT(len(src)).Coefficients(nil, wide)
}

func referenceIDFT(src []complex64) []complex128 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	if len(src) <= naiveLimit {
		return reference.NaiveIDFT128(wide)
	}

	out := fourier.NewCmplxFFT(len(src)).Sequence(nil, wide)
	scale := complex(1/float64(len(src)), 0)

	for i := range out {
		out[i] *= scale
	}

	return out
}

func referenceRealDFT(src []float32) []complex128 {
	if len(src) <= naiveLimit {
		return reference.RealDFT(src)
	}

	wide := make([]float64, len(src))
	for i, v := range src {
		wide[i] = float64(v)
	}

	return fourier.NewFFT(len(src)).Coefficients(nil, wide)
}

func assertClose128(t *testing.T, got []complex64, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := cmplx.Abs(complex128(got[i]) - want[i]); d > tol {
			t.Fatalf("index %d: got %v, want %v (diff=%g, tol=%g)", i, got[i], want[i], d, tol)
		}
	}
}

func checkForward(t *testing.T, got, src []complex64) {
	t.Helper()
	assertClose128(t, got, referenceDFT(src), forwardTol(len(src)))
}

func checkInverse(t *testing.T, got, src []complex64) {
	t.Helper()

	n := len(src)
	assertClose128(t, got, referenceIDFT(src), forwardTol(n)/float64(n))
}

func checkRoundTrip(t *testing.T, got, src []complex64) {
	t.Helper()

	want := make([]complex128, len(src))
	for i, v := range src {
		want[i] = complex128(v)
	}

	assertClose128(t, got, want, roundTripTol(len(src)))
}

// checkReal compares a packed real spectrum against the half spectrum of src.
func checkReal(t *testing.T, got []complex64, src []float32) {
	t.Helper()

	n := len(src)
	want := referenceRealDFT(src)
	tol := forwardTol(n)

	if d := math.Abs(float64(real(got[0])) - real(want[0])); d > tol {
		t.Fatalf("DC: got %v, want %v", real(got[0]), real(want[0]))
	}

	if d := math.Abs(float64(imag(got[0])) - real(want[n/2])); d > tol {
		t.Fatalf("Nyquist: got %v, want %v", imag(got[0]), real(want[n/2]))
	}

	assertClose128(t, got[1:], want[1:n/2], tol)
}
