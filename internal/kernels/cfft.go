package kernels

import (
	m "github.com/cwbudde/algo-microfft/internal/math"
)

// Forward computes the in-place forward DFT of x using an iterative radix-2
// decimation-in-time transform. Output is in natural frequency order.
//
// len(x) must be a power of 2 no larger than 2*len(twiddle), where twiddle
// holds W_T^k for k = 0..T/2-1 and T = 2*len(twiddle). A stage of span s reads
// every (T/s)-th table entry. Twiddles 1+0i and 0-1i are applied as plain
// add/subtract and as a -90° rotation rather than as multiplies.
//
// Forward performs no allocation.
func Forward(x, twiddle []complex64) {
	n := len(x)
	assertTable(n, len(twiddle))

	switch n {
	case 0, 1:
		return
	case 2:
		forwardDIT2(x)
		return
	case 4:
		forwardDIT4(x)
		return
	case 8:
		forwardDIT8(x, twiddle)
		return
	}

	m.BitReversePermute(x)
	forwardStages(x, twiddle)
}

// ForwardSized is Forward for a table built for exactly len(x), the form used
// by the fixed-size entry points.
func ForwardSized(x, twiddle []complex64) {
	assertLength(len(x), len(twiddle))
	Forward(x, twiddle)
}

// ForwardReference computes the same transform as Forward with the same stage
// order, but applies every twiddle, including 1+0i and 0-1i, through a full
// complex multiply. It exists to compare both formulations bit for bit.
func ForwardReference(x, twiddle []complex64) {
	n := len(x)
	assertTable(n, len(twiddle))

	if n < 2 {
		return
	}

	m.BitReversePermute(x)

	span := 2 * len(twiddle)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := span / size

		for k := range half {
			w := twiddle[k*step]
			for j := k; j < n; j += size {
				x[j], x[j+half] = butterfly2(x[j], x[j+half], w)
			}
		}
	}
}

// forwardStages runs all butterfly stages over bit-reversed input.
func forwardStages(x, twiddle []complex64) {
	n := len(x)
	span := 2 * len(twiddle)

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		quarter := half >> 1
		step := span / size

		// k = 0: W = 1+0i
		for j := 0; j < n; j += size {
			x[j], x[j+half] = butterflyUnit(x[j], x[j+half])
		}

		if half < 2 {
			continue
		}

		// k = half/2: W = 0-1i
		for j := quarter; j < n; j += size {
			x[j], x[j+half] = butterflyNegI(x[j], x[j+half])
		}

		for k := 1; k < half; k++ {
			if k == quarter {
				continue
			}

			w := twiddle[k*step]
			for j := k; j < n; j += size {
				x[j], x[j+half] = butterfly2(x[j], x[j+half], w)
			}
		}
	}
}
