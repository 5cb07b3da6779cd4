// Package scalar defines the numeric abstraction the rest of the module
// builds on. Every parametric quantity in tmesh, eval, and tspline — knot
// values, parametric coordinates, knot intervals — is expressed in terms of
// a Scalar rather than a hard-coded float64, so the same algorithms run
// unchanged over IEEE-754 floats or a fixed-point representation.
//
// A Scalar implementation is F-bounded: Scalar[T] describes arithmetic that
// takes and returns values of T itself, so a concrete type such as Float64
// satisfies Scalar[Float64]. Callers that need a "fresh" value of T without
// a constructor in scope can use the package-level Zero, One, and Delta
// helpers, which construct values via the zero value of T as a type
// witness.
package scalar

// Scalar is the arithmetic contract every parametric type parameter in this
// module must satisfy. Implementations must be value types: Add, Sub, Mul,
// and Div never mutate the receiver.
type Scalar[T any] interface {
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	Less(other T) bool
	LessEq(other T) bool
	Abs() T

	// FromInt builds a T from a small integer. The receiver's value is
	// irrelevant; FromInt is called purely as a type witness (e.g.
	// Zero[T]().FromInt(3)).
	FromInt(n int) T

	// Delta returns the type's natural tolerance unit: roughly the
	// smallest difference the type can reliably distinguish from zero.
	// Tolerances used throughout tmesh and eval are expressed as
	// multiples of Delta rather than hard-coded constants, so they stay
	// meaningful whether T is a 64-bit float or a fixed-point type.
	Delta() T

	// Float64 converts the value to a float64. eval uses it where a
	// basis weight (and the evaluator's Delta-based tolerances) is folded
	// into the mgl64-based rational sum that produces the final 3D
	// surface point, and the seed constructors use it to derive default
	// control-point geometry from parametric coordinates — surface
	// geometry is always expressed in float64 regardless of which
	// Scalar the surrounding mesh is parameterized over.
	Float64() float64
}

// Zero returns the zero value of T.
func Zero[T Scalar[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	return Zero[T]().FromInt(1)
}

// Delta returns T's natural tolerance unit (see Scalar.Delta).
func Delta[T Scalar[T]]() T {
	return Zero[T]().Delta()
}

// Scale returns Delta[T]() multiplied by the integer mul. It is the
// idiomatic way to derive a coarser tolerance (e.g. 1e3 or 1e6 times
// Delta) without hard-coding a type-specific constant.
func Scale[T Scalar[T]](mul int) T {
	return Delta[T]().Mul(Zero[T]().FromInt(mul))
}

// Neg returns the additive inverse of x.
func Neg[T Scalar[T]](x T) T {
	return Zero[T]().Sub(x)
}
