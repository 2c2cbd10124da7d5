// Package conformance checks that the float32 arithmetic underneath the
// transforms behaves the same on the running platform as on x86-64.
//
// The transforms apply the twiddle 0-1i as a swap-and-negate rotation instead
// of a complex multiply. Both are exact for finite nonzero operands but can
// disagree on the sign of a zero, and a platform that contracts multiply-add
// sequences may round the multiply differently. The checks here report such
// divergence rather than hide it:
//
//   - float32 machine epsilon must equal the x86 value 2^-23
//   - hypot must agree with sqrt(x²+y²)
//   - b·(0-1i) is compared bit for bit with the rotation
//   - each transform size is compared bit for bit with a variant that applies
//     every twiddle as a full multiply
//   - the amplitude spectrum of a sampled sine is compared with gonum
package conformance
