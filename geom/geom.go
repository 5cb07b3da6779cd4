// Package geom implements the 2D parametric-domain primitives the rest of
// the module needs: points in (s, t) space, axis-aligned segments between
// them, and the orientation/intersection tests that drive local knot
// inference and analysis-suitable-T-spline validation.
//
// Every type here is generic over scalar.Scalar so the same orientation
// arithmetic runs whether the surrounding mesh is parameterized by Float64
// or a fixed-point type.
package geom

import "github.com/arcweave/tspline/scalar"

// Axis names one of the two parametric directions.
type Axis int

const (
	AxisS Axis = iota
	AxisT
)

// Other returns the axis perpendicular to a.
func (a Axis) Other() Axis {
	if a == AxisS {
		return AxisT
	}
	return AxisS
}

// Point is a location in the (s, t) parametric domain.
type Point[T scalar.Scalar[T]] struct {
	S, T T
}

// Sub returns p - o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return Point[T]{S: p.S.Sub(o.S), T: p.T.Sub(o.T)}
}

// Along returns the coordinate of p along the given axis.
func (p Point[T]) Along(axis Axis) T {
	if axis == AxisS {
		return p.S
	}
	return p.T
}

// Ortho returns the coordinate of p along the axis perpendicular to the
// given one — e.g. Ortho(AxisS) is the T coordinate.
func (p Point[T]) Ortho(axis Axis) T {
	return p.Along(axis.Other())
}

// Cross2D returns the z-component of the 3D cross product of a and b,
// treated as vectors in the parametric plane.
func Cross2D[T scalar.Scalar[T]](a, b Point[T]) T {
	return a.S.Mul(b.T).Sub(a.T.Mul(b.S))
}

// Orientation returns the signed area of the triangle (a, b, c): positive
// when c lies to the left of the directed line a->b, negative to the
// right, and within the caller's tolerance of zero when collinear.
func Orientation[T scalar.Scalar[T]](a, b, c Point[T]) T {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return Cross2D(ab, ac)
}
