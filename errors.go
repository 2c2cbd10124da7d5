package microfft

import "errors"

// Sentinel errors returned by the slice-based Transform API. The sized
// functions (FFT16, IFFT16, ...) never fail: their lengths are fixed by type.
var (
	// ErrInvalidLength is returned when the transform size is not one of the
	// supported powers of two, 2 through 16384.
	ErrInvalidLength = errors.New("microfft: invalid transform length")

	// ErrSizeDisabled is returned when the size is supported but was compiled
	// out with a microfft_no<N> build tag.
	ErrSizeDisabled = errors.New("microfft: transform size disabled at build time")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("microfft: nil slice")

	// ErrLengthMismatch is returned when a buffer length differs from the
	// Transform's size.
	ErrLengthMismatch = errors.New("microfft: slice length mismatch")
)
