package kernels

import (
	"fmt"
	"math"
	"testing"

	m "github.com/cwbudde/algo-microfft/internal/math"
	"github.com/cwbudde/algo-microfft/internal/reference"
)

func TestReorderBoundaryIndicesFixed(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := make([]complex64, n)
			for i := range x {
				x[i] = complex(float32(i), -float32(i))
			}

			Reorder(x)

			if x[0] != 0 {
				t.Errorf("x[0] moved: %v", x[0])
			}

			if want := complex(float32(n/2), -float32(n/2)); x[n/2] != want {
				t.Errorf("x[%d] = %v, want %v", n/2, x[n/2], want)
			}

			for i := 1; i < n; i++ {
				if i == n/2 {
					continue
				}

				if want := complex(float32(n-i), -float32(n-i)); x[i] != want {
					t.Fatalf("x[%d] = %v, want %v", i, x[i], want)
				}
			}

			// Reflection is an involution.
			Reorder(x)

			for i := range x {
				if want := complex(float32(i), -float32(i)); x[i] != want {
					t.Fatalf("after double reorder x[%d] = %v, want %v", i, x[i], want)
				}
			}
		})
	}
}

func TestNormalizeDividesByLength(t *testing.T) {
	t.Parallel()

	x := []complex64{4 + 8i, -2 + 1i, 0, 1 - 3i}
	Normalize(x)

	want := []complex64{1 + 2i, -0.5 + 0.25i, 0, 0.25 - 0.75i}
	assertBitIdentical(t, x, want)

	Normalize(nil)
}

func TestNormalizeKeepsSignedZero(t *testing.T) {
	t.Parallel()

	negZero := float32(math.Copysign(0, -1))
	x := []complex64{complex(negZero, 1), 0}
	Normalize(x)

	if !math.Signbit(float64(real(x[0]))) {
		t.Errorf("real part lost its sign: %v", x[0])
	}
}

func TestInverseDC(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		x := make([]complex64, n)
		x[0] = complex(float32(n), 0)

		Inverse(x, m.ComputeTwiddleTable(n))

		for i, v := range x {
			if v != 1 {
				t.Fatalf("n=%d: x[%d] = %v, want 1", n, i, v)
			}
		}
	}
}

func TestInverseMatchesNaiveIDFT(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		if n > naiveLimit {
			continue
		}

		src := randomComplex64(n, int64(n)+1234)
		got := clone(src)
		Inverse(got, m.ComputeTwiddleTable(n))

		// Output magnitudes shrink by 1/n relative to the forward transform.
		assertComplex64Close(t, got, reference.NaiveIDFT(src), forwardTol(n)/float64(n))
	}
}

func TestInverseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			twiddle := m.ComputeTwiddleTable(n)
			src := randomComplex64(n, int64(n)^0x5eed)

			x := clone(src)
			Forward(x, twiddle)
			Inverse(x, twiddle)

			assertComplex64Close(t, x, src, roundTripTol(n))
		})
	}
}

// n·Inverse(x) must equal Forward(Reorder(x)) exactly: dividing by a power
// of two is exact, so any other scale shows up as a bit difference.
func TestInverseScaleIsExactlyOneOverN(t *testing.T) {
	t.Parallel()

	for _, n := range supportedSizes {
		twiddle := m.ComputeTwiddleTable(n)
		src := randomComplex64(n, 77)

		inv := clone(src)
		Inverse(inv, twiddle)

		raw := clone(src)
		Reorder(raw)
		Forward(raw, twiddle)

		scaled := make([]complex64, n)
		for i, v := range inv {
			scaled[i] = complex(real(v)*float32(n), imag(v)*float32(n))
		}

		assertBitIdentical(t, scaled, raw)
	}
}

func TestInverseLinearity(t *testing.T) {
	t.Parallel()

	const n = 256

	twiddle := m.ComputeTwiddleTable(n)
	x := randomComplex64(n, 1)
	y := randomComplex64(n, 2)
	a := complex64(complex(2.5, 1.3))
	b := complex64(complex(-1.7, 0.8))

	combined := make([]complex64, n)
	for i := range combined {
		combined[i] = a*x[i] + b*y[i]
	}

	Inverse(combined, twiddle)
	Inverse(x, twiddle)
	Inverse(y, twiddle)

	want := make([]complex64, n)
	for i := range want {
		want[i] = a*x[i] + b*y[i]
	}

	assertComplex64Close(t, combined, want, 1e-5)
}

func TestInverseNoAllocations(t *testing.T) {
	twiddle := m.ComputeTwiddleTable(512)
	x := randomComplex64(512, 3)

	allocs := testing.AllocsPerRun(50, func() {
		Inverse(x, twiddle)
	})
	if allocs != 0 {
		t.Errorf("Inverse allocates %.1f times per run", allocs)
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range supportedSizes {
		twiddle := m.ComputeTwiddleTable(n)
		x := randomComplex64(n, 7)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Inverse(x, twiddle)
			}
		})
	}
}
