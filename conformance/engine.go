package conformance

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/cwbudde/algo-microfft/internal/kernels"
	m "github.com/cwbudde/algo-microfft/internal/math"
)

// EngineResult compares the transform for one size with the variant that
// applies every twiddle through a full complex multiply.
type EngineResult struct {
	Size int

	// Mismatches counts output bins that differ in at least one bit.
	Mismatches int

	// MaxAbsDiff is the largest |a-b| over all bins.
	MaxAbsDiff float64
}

// CompareEngine runs both formulations of the size-n forward transform on the
// same random input.
func CompareEngine(n int, seed int64) EngineResult {
	twiddle := m.ComputeTwiddleTable(n)

	rng := rand.New(rand.NewSource(seed))

	fast := make([]complex64, n)
	for i := range fast {
		fast[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}

	ref := append([]complex64(nil), fast...)

	kernels.Forward(fast, twiddle)
	kernels.ForwardReference(ref, twiddle)

	res := EngineResult{Size: n}

	for i := range fast {
		if !sameBits(fast[i], ref[i]) {
			res.Mismatches++
		}

		d := cmplx.Abs(complex128(fast[i] - ref[i]))
		if !math.IsNaN(d) {
			res.MaxAbsDiff = max(res.MaxAbsDiff, d)
		}
	}

	return res
}
