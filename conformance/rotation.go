package conformance

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-microfft/internal/kernels"
)

// ButterflyVector is a four-point input whose x[1] has a tiny real part, so
// rotating it by 0-1i exercises the low bits of the result. It reproduces a
// sign flip seen on FMA-capable embedded targets.
var ButterflyVector = [4]complex64{
	complex(0, 0.9238795),
	complex(-0.000000023849761, -0.9238794),
	complex(-1, -0.38268343),
	complex(1, 0.38268384),
}

// Divergence records an operand for which the multiply and the rotation
// differ in at least one bit.
type Divergence struct {
	Input    complex64
	Multiply complex64
	Rotate   complex64
}

// negI is a variable so the compiler cannot fold the multiply.
var negI = complex64(complex(0, -1))

//go:noinline
func multiply(a, b complex64) complex64 {
	return a * b
}

// CompareRotation multiplies each sample by 0-1i both ways and returns every
// sample whose results are not bit-identical.
func CompareRotation(samples []complex64) []Divergence {
	var out []Divergence

	for _, b := range samples {
		mul := multiply(b, negI)
		rot := kernels.MulNegI(b)

		if !sameBits(mul, rot) {
			out = append(out, Divergence{Input: b, Multiply: mul, Rotate: rot})
		}
	}

	return out
}

// ButterflyRotation runs the k=0 butterfly of a span-4 stage on ButterflyVector,
// which updates x[0] and x[2] only, then rotates the untouched x[1] by 0-1i
// and returns the result computed both ways.
func ButterflyRotation() (mul, rot complex64) {
	x := ButterflyVector

	x[0], x[2] = x[0]+x[2], x[0]-x[2]

	return multiply(x[1], negI), kernels.MulNegI(x[1])
}

// RotationSamples returns the fixed vectors followed by n random values from
// seed. The fixed vectors cover both signed zeros, infinities and
// ButterflyVector.
func RotationSamples(n int, seed int64) []complex64 {
	inf := float32(math.Inf(1))
	negZero := float32(math.Copysign(0, -1))

	out := []complex64{
		complex(0, 0),
		complex(negZero, 0),
		complex(0, negZero),
		complex(negZero, negZero),
		complex(1, 0),
		complex(0, 1),
		complex(inf, 1),
		complex(1, -inf),
	}
	out = append(out, ButterflyVector[:]...)

	rng := rand.New(rand.NewSource(seed))
	for range n {
		out = append(out, complex(rng.Float32()*2-1, rng.Float32()*2-1))
	}

	return out
}

func sameBits(a, b complex64) bool {
	return math.Float32bits(real(a)) == math.Float32bits(real(b)) &&
		math.Float32bits(imag(a)) == math.Float32bits(imag(b))
}
