package kernels

// Inverse computes the normalized inverse DFT of x in place by reflecting the
// input indices, running the forward transform and dividing by len(x).
//
// Each step completes over the whole buffer before the next begins. Unlike
// Forward, twiddle must be the table for exactly len(x).
func Inverse(x, twiddle []complex64) {
	assertLength(len(x), len(twiddle))

	Reorder(x)
	Forward(x, twiddle)
	Normalize(x)
}

// Reorder swaps x[i] and x[n-i] for i = 1..n/2-1. x[0] and x[n/2] keep their
// positions. Only positions move; no sign is changed.
func Reorder(x []complex64) {
	n := len(x)
	for i := 1; i < n/2; i++ {
		x[i], x[n-i] = x[n-i], x[i]
	}
}

// Normalize divides the real and imaginary part of every sample by len(x).
func Normalize(x []complex64) {
	if len(x) == 0 {
		return
	}

	d := float32(len(x))
	for i, v := range x {
		x[i] = complex(real(v)/d, imag(v)/d)
	}
}
