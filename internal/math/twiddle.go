package math

import "math"

// Twiddle returns W_n^k = exp(-2πik/n) rounded to complex64.
//
// The value is evaluated in float64 and rounded once. Quarter-turn points are
// returned exactly so that 1+0i, 0-1i, -1+0i and 0+1i carry no residual
// rounding in their zero component.
func Twiddle(k, n int) complex64 {
	k %= n
	if k < 0 {
		k += n
	}

	switch {
	case k == 0:
		return complex(1, 0)
	case 4*k == n:
		return complex(0, -1)
	case 2*k == n:
		return complex(-1, 0)
	case 4*k == 3*n:
		return complex(0, 1)
	}

	sin, cos := math.Sincos(-TwoPi * float64(k) / float64(n))

	return complex(float32(cos), float32(sin))
}

// ComputeTwiddleTable returns the first n/2 twiddle factors of a size-n
// transform: W_n^k for k = 0..n/2-1. Returns nil for n < 2.
//
// A table built for n also serves every transform of size n/2^j by reading
// every 2^j-th entry.
func ComputeTwiddleTable(n int) []complex64 {
	if n < 2 {
		return nil
	}

	table := make([]complex64, n/2)
	for k := range table {
		table[k] = Twiddle(k, n)
	}

	return table
}
