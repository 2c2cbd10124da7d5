package kernels

// RealForward computes the forward DFT of 2*len(z) real samples packed
// pairwise into z (z[k] = x[2k] + i·x[2k+1]).
//
// On return z[k] holds bin k of the real spectrum for k = 1..len(z)-1, and
// z[0] holds the DC term in its real part and the Nyquist term in its
// imaginary part. twiddle must be the table for size 2*len(z); the half-length
// transform strides it.
func RealForward(z, twiddle []complex64) {
	assertLength(2*len(z), len(twiddle))

	Forward(z, twiddle)
	recombine(z, twiddle)
}

// recombine splits the half-length spectrum Z of the packed sequence into the
// even and odd sub-spectra and merges them into the real spectrum:
//
//	E[k] = (Z[k] + conj(Z[m-k])) / 2
//	O[k] = (Z[k] - conj(Z[m-k])) / 2i
//	X[k] = E[k] + W_2m^k·O[k],  X[m-k] = conj(E[k] - W_2m^k·O[k])
func recombine(z, twiddle []complex64) {
	m := len(z)
	if m == 0 {
		return
	}

	z0 := z[0]
	z[0] = complex(real(z0)+imag(z0), real(z0)-imag(z0))

	if m < 2 {
		return
	}

	u := m / 2
	step := len(twiddle) / m

	// At k = m/2 the twiddle is 0-1i and the merge reduces to a conjugate.
	z[u] = conj(z[u])

	for k := 1; k < u; k++ {
		a, b := z[k], conj(z[m-k])

		e := half(a + b)
		o := MulNegI(half(a - b))
		t := twiddle[k*step] * o

		z[k] = e + t
		z[m-k] = conj(e - t)
	}
}

func half(v complex64) complex64 {
	return complex(real(v)*0.5, imag(v)*0.5)
}

func conj(v complex64) complex64 {
	return complex(real(v), -imag(v))
}
