package kernels

// forwardDIT2 computes a 2-point forward FFT in place.
func forwardDIT2(x []complex64) {
	s := x[:2]
	s[0], s[1] = s[0]+s[1], s[0]-s[1]
}

// forwardDIT4 computes a 4-point forward FFT in place.
// The only twiddles are 1+0i and 0-1i, so no table is read.
// Bit reversal (0, 2, 1, 3) is folded into the loads.
func forwardDIT4(x []complex64) {
	s := x[:4]

	x0, x1, x2, x3 := s[0], s[1], s[2], s[3]

	// Stage 1: span 2
	a0, a1 := butterflyUnit(x0, x2)
	a2, a3 := butterflyUnit(x1, x3)

	// Stage 2: span 4
	s[0], s[2] = butterflyUnit(a0, a2)
	s[1], s[3] = butterflyNegI(a1, a3)
}

// forwardDIT8 computes an 8-point forward FFT in place.
// W_8^1 and W_8^3 come from the table; W_8^0 and W_8^2 are applied
// as add/subtract and -90° rotation.
func forwardDIT8(x, twiddle []complex64) {
	s := x[:8]

	step := 2 * len(twiddle) / 8
	w1, w3 := twiddle[step], twiddle[3*step]

	// Stage 1: span 2, inputs in bit-reversed order (0, 4, 2, 6, 1, 5, 3, 7)
	a0, a1 := butterflyUnit(s[0], s[4])
	a2, a3 := butterflyUnit(s[2], s[6])
	a4, a5 := butterflyUnit(s[1], s[5])
	a6, a7 := butterflyUnit(s[3], s[7])

	// Stage 2: span 4
	b0, b2 := butterflyUnit(a0, a2)
	b1, b3 := butterflyNegI(a1, a3)
	b4, b6 := butterflyUnit(a4, a6)
	b5, b7 := butterflyNegI(a5, a7)

	// Stage 3: span 8
	s[0], s[4] = butterflyUnit(b0, b4)
	s[1], s[5] = butterfly2(b1, b5, w1)
	s[2], s[6] = butterflyNegI(b2, b6)
	s[3], s[7] = butterfly2(b3, b7, w3)
}
