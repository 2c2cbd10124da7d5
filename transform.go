package microfft

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-microfft/internal/kernels"
)

// Transform gives slice access to the transform of one fixed size. It is the
// closed-enumeration counterpart of the sized functions: pick it once with
// Lookup and reuse it. A Transform holds no mutable state and may be shared
// between goroutines; each buffer must be owned by a single caller.
//
// Unlike the sized functions, Transform validates its arguments.
type Transform struct {
	size    Size
	twiddle *kernels.TwiddleTable
}

// registry holds the Transform for each compiled-in size, indexed by
// log2(n)-1. It is filled by the init functions of the per-size files and is
// read-only afterwards.
var registry [numSizes]*Transform

func register(size Size, twiddle *kernels.TwiddleTable) {
	registry[size.index()] = &Transform{size: size, twiddle: twiddle}
}

// Lookup returns the Transform for n.
//
// It returns ErrInvalidLength if n is not a supported size and
// ErrSizeDisabled if the size was excluded at build time.
func Lookup(n int) (*Transform, error) {
	size := Size(n)
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	t := registry[size.index()]
	if t == nil {
		return nil, fmt.Errorf("%w: %d", ErrSizeDisabled, n)
	}

	return t, nil
}

// Sizes returns the compiled-in sizes in ascending order.
func Sizes() []Size {
	out := make([]Size, 0, numSizes)

	for _, t := range registry {
		if t != nil {
			out = append(out, t.size)
		}
	}

	return out
}

// Size returns the transform size.
func (t *Transform) Size() Size {
	return t.size
}

// Len returns the transform size as an int.
func (t *Transform) Len() int {
	return int(t.size)
}

// Forward computes the forward FFT of x in place.
func (t *Transform) Forward(x []complex64) error {
	if err := t.check(len(x), x == nil); err != nil {
		return err
	}

	kernels.ForwardSized(x, t.twiddle.Get())

	return nil
}

// Inverse computes the normalized inverse FFT of x in place.
func (t *Transform) Inverse(x []complex64) error {
	if err := t.check(len(x), x == nil); err != nil {
		return err
	}

	kernels.Inverse(x, t.twiddle.Get())

	return nil
}

// Real computes the forward FFT of the real samples in x in place and returns
// the spectrum as a view of the same storage: len(x)/2 complex bins where bin 0
// holds the DC term in its real part and the Nyquist term in its imaginary
// part.
func (t *Transform) Real(x []float32) ([]complex64, error) {
	if err := t.check(len(x), x == nil); err != nil {
		return nil, err
	}

	z := unsafe.Slice((*complex64)(unsafe.Pointer(&x[0])), len(x)/2)
	kernels.RealForward(z, t.twiddle.Get())

	return z, nil
}

func (t *Transform) check(n int, isNil bool) error {
	if isNil {
		return ErrNilSlice
	}

	if n != int(t.size) {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, n, t.size)
	}

	return nil
}
