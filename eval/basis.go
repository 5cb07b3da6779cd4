// Package eval computes points on a T-spline surface: the cubic B-spline
// basis over a vertex's local knot vector, and the rational tensor-product
// sum that combines every control point's contribution at a given (s, t).
package eval

import "github.com/arcweave/tspline/scalar"

// CubicBasis evaluates a single cubic B-spline basis function at u, given
// its five-element local knot vector, via the Cox-de Boor recurrence. It
// is computed in place over a four-element scratch array seeded with the
// degree-0 indicator, raised to degree 1, 2, then 3, processing indices in
// increasing order each pass so a slot's update (which reads the next
// slot) always happens before that next slot is overwritten.
//
// u == knots[4] (the function's right endpoint) is treated as a left
// limit: u is replaced by u-ε for the whole recurrence, per §4.3, rather
// than only at the degree-0 step. Substituting just at degree 0 leaves
// every later pass reading the unmodified u again, which is wrong
// whenever the window has multiplicity at the right end (knots[3] ==
// knots[4]) — exactly the case for a max-boundary vertex's own
// collapsed knot vector.
func CubicBasis[T scalar.Scalar[T]](u T, knots [5]T) T {
	zero := scalar.Zero[T]()
	eps := scalar.Delta[T]()

	v := u
	if !u.Less(knots[4]) && !knots[4].Less(u) {
		v = u.Sub(eps)
	}

	var n [4]T
	for i := 0; i < 4; i++ {
		lo, hi := knots[i], knots[i+1]
		if !v.Less(lo) && v.Less(hi) {
			n[i] = scalar.One[T]()
		} else {
			n[i] = zero
		}
	}

	for degree := 1; degree <= 3; degree++ {
		for i := 0; i < 4-degree; i++ {
			left := knots[i+degree].Sub(knots[i])
			var leftTerm T
			if left.Abs().Less(eps) {
				leftTerm = zero
			} else {
				leftTerm = v.Sub(knots[i]).Div(left).Mul(n[i])
			}

			right := knots[i+degree+1].Sub(knots[i+1])
			var rightTerm T
			if right.Abs().Less(eps) {
				rightTerm = zero
			} else {
				rightTerm = knots[i+degree+1].Sub(v).Div(right).Mul(n[i+1])
			}

			n[i] = leftTerm.Add(rightTerm)
		}
	}

	return n[0]
}
