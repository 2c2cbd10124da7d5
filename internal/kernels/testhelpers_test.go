package kernels

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	m "github.com/cwbudde/algo-microfft/internal/math"
)

// Shared test helpers used across kernel tests.

var supportedSizes = []int{2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384}

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}

	return out
}

// forwardTol bounds the absolute error of a float32 forward transform of
// inputs in [-1, 1]: outputs grow like sqrt(n) and error like log2(n).
func forwardTol(n int) float64 {
	return 5e-6 * float64(m.Log2(n)+1) * math.Sqrt(float64(n))
}

// roundTripTol bounds the absolute error of forward followed by inverse.
func roundTripTol(n int) float64 {
	return 1e-5 * float64(m.Log2(n)+1)
}

func assertComplex64Close(t *testing.T, got, want []complex64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := cmplx.Abs(complex128(got[i] - want[i])); d > tol {
			t.Fatalf("index %d: got %v, want %v (diff=%g, tol=%g)", i, got[i], want[i], d, tol)
		}
	}
}

func assertComplex64Close128(t *testing.T, got []complex64, want []complex128, tol float64) {
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

func assertBitIdentical(t *testing.T, got, want []complex64) {
	t.Helper()

	for i := range got {
		if math.Float32bits(real(got[i])) != math.Float32bits(real(want[i])) ||
			math.Float32bits(imag(got[i])) != math.Float32bits(imag(want[i])) {
			t.Fatalf("index %d: got %v, want bit-identical %v", i, got[i], want[i])
		}
	}
}

func clone(x []complex64) []complex64 {
	out := make([]complex64, len(x))
	copy(out, x)

	return out
}
