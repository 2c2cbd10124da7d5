package kernels

// MulNegI returns b·(0-1i) computed as a swap of the real and imaginary
// parts followed by a negation of the new imaginary part. No multiply is
// issued, so no floating-point unit can fuse or reorder it.
func MulNegI(b complex64) complex64 {
	return complex(imag(b), -real(b))
}

// butterfly2 computes the radix-2 butterfly a ± w·b.
func butterfly2(a, b, w complex64) (complex64, complex64) {
	t := w * b
	return a + t, a - t
}

// butterflyUnit is butterfly2 with w = 1+0i.
func butterflyUnit(a, b complex64) (complex64, complex64) {
	return a + b, a - b
}

// butterflyNegI is butterfly2 with w = 0-1i.
func butterflyNegI(a, b complex64) (complex64, complex64) {
	t := MulNegI(b)
	return a + t, a - t
}
