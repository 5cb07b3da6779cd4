// Package scalar defines the numeric abstraction every other package in
// this module builds on: knot values, parametric coordinates, and knot
// intervals are all expressed in terms of a Scalar rather than a
// hard-coded float64.
//
// Why an interface instead of a type union (~float32 | ~float64)? A type
// union only buys arithmetic operators. It says nothing about a type's
// natural tolerance, how to build a T from a small integer without a
// literal in scope, or the one-time conversion to float64 eval needs at
// the point a basis weight folds into the mgl64-based rational sum. Scalar
// is F-bounded instead — every method takes and returns T itself — so
// Float64 satisfies Scalar[Float64], and the fixed-point Fixed64 satisfies
// Scalar[Fixed64] the same way, without either type naming the other.
//
// Implementations provided:
//
//   - Float64, a thin float64 wrapper with Delta 1e-12.
//   - Float32, a thin float32 wrapper with Delta 1e-6.
//   - Fixed64, a Q32.32 fixed-point type whose Delta is one ULP (2^-32).
//
// Zero, One, Delta, Scale, and Neg build values of T from nothing but T's
// own zero value as a type witness — the idiom any function generic over
// T uses when it needs a literal like "1" or "1e6 * epsilon" but has no
// live value of T in scope yet.
package scalar
