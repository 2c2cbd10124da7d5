// Package microfft implements fixed-size, allocation-free FFTs over complex64
// buffers for the power-of-two lengths 2 through 16384.
//
// Every size has its own entry points taking a pointer to a fixed-length
// array, so a length mismatch cannot compile:
//
//	var buf [16]complex64
//	microfft.FFT16(&buf)  // forward, in place
//	microfft.IFFT16(&buf) // inverse, in place, normalized by 1/16
//
//	var samples [16]float32
//	spectrum := microfft.RFFT16(&samples) // *[8]complex64 aliasing samples
//
// The inverse transform reflects the input indices (x[i] <-> x[N-i]), runs the
// forward transform of the same size and divides every sample by N.
//
// Transforms mutate the caller's buffer and return the same storage. They
// allocate nothing; each size's twiddle table is computed once, on first use.
//
// Sizes above 2 can be compiled out with build tags of the form
// microfft_no<N>, e.g. -tags microfft_no8192,microfft_no16384. The
// microfft_debug tag enables internal length assertions.
//
// Lookup provides the same transforms behind a validated slice API for callers
// that choose the size once at runtime.
package microfft

//go:generate go run ./internal/gen/sizes -out .
