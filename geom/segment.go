package geom

import "github.com/arcweave/tspline/scalar"

// Segment is a finite line segment between two points in the parametric
// domain.
type Segment[T scalar.Scalar[T]] struct {
	A, B Point[T]
}

// withinBounds reports whether p lies within the axis-aligned bounding box
// of a and b, componentwise, within eps.
func withinBounds[T scalar.Scalar[T]](a, b, p Point[T], eps T) bool {
	return withinRange(a.S, b.S, p.S, eps) && withinRange(a.T, b.T, p.T, eps)
}

// withinRange reports whether x lies in [min(x0,x1)-eps, max(x0,x1)+eps].
func withinRange[T scalar.Scalar[T]](x0, x1, x T, eps T) bool {
	lo, hi := x0, x1
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	negEps := scalar.Neg(eps)
	belowLo := x.Sub(lo).Less(negEps)
	aboveHi := hi.Add(eps).Less(x)
	return !belowLo && !aboveHi
}

// Intersects reports whether s and o cross: either a proper crossing
// (their orientation products are both strictly negative) or a touch —
// one segment's endpoint is collinear with the other, within eps, and
// falls inside its bounding interval.
func (s Segment[T]) Intersects(o Segment[T], eps T) bool {
	d1 := Orientation(o.A, o.B, s.A)
	d2 := Orientation(o.A, o.B, s.B)
	d3 := Orientation(s.A, s.B, o.A)
	d4 := Orientation(s.A, s.B, o.B)

	if d1.Mul(d2).Less(scalar.Zero[T]()) && d3.Mul(d4).Less(scalar.Zero[T]()) {
		return true
	}

	if d1.Abs().Less(eps) && withinBounds(o.A, o.B, s.A, eps) {
		return true
	}
	if d2.Abs().Less(eps) && withinBounds(o.A, o.B, s.B, eps) {
		return true
	}
	if d3.Abs().Less(eps) && withinBounds(s.A, s.B, o.A, eps) {
		return true
	}
	if d4.Abs().Less(eps) && withinBounds(s.A, s.B, o.B, eps) {
		return true
	}
	return false
}

// OnSegment reports whether p lies on the segment a-b, within eps.
func OnSegment[T scalar.Scalar[T]](a, b, p Point[T], eps T) bool {
	if !Orientation(a, b, p).Abs().Less(eps) {
		return false
	}
	return withinBounds(a, b, p, eps)
}
