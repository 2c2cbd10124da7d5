package conformance

import "math"

// X86MachineEpsilon32 is the float32 machine epsilon, 2^-23, as observed on
// x86-64 with SSE arithmetic.
const X86MachineEpsilon32 float32 = 1.1920929e-7

// MachineEpsilon32 measures the smallest power of two eps for which
// 1+eps/2 still rounds to 1 in float32 arithmetic.
func MachineEpsilon32() float32 {
	eps := float32(1)
	for one(eps/2) != 1 {
		eps /= 2
	}

	return eps
}

//go:noinline
func one(v float32) float32 {
	return v + 1
}

// HypotDifference returns |hypot(x, y) - sqrt(x²+y²)| evaluated in float32.
func HypotDifference(x, y float32) float64 {
	h := float32(math.Hypot(float64(x), float64(y)))
	s := float32(math.Sqrt(float64(x*x + y*y)))

	return math.Abs(float64(h - s))
}
