//go:build microfft_debug

package kernels

import (
	"fmt"

	m "github.com/cwbudde/algo-microfft/internal/math"
)

// assertTable panics unless n is a power of 2 covered by a twiddle table of
// the given length. Enabled with the microfft_debug build tag.
func assertTable(n, tableLen int) {
	if n == 0 {
		return
	}

	if !m.IsPowerOf2(n) {
		panic(fmt.Sprintf("kernels: length %d is not a power of 2", n))
	}

	if n > 1 && n > 2*tableLen {
		panic(fmt.Sprintf("kernels: length %d exceeds twiddle table for size %d", n, 2*tableLen))
	}
}

// assertLength panics unless n equals the transform size the twiddle table
// was built for. Enabled with the microfft_debug build tag.
func assertLength(n, tableLen int) {
	if size := 2 * tableLen; n != size {
		panic(fmt.Sprintf("kernels: length %d does not match twiddle table for size %d", n, size))
	}
}
