// Package geom implements the 2D parametric-domain primitives tmesh and
// eval are built on: points in (s, t) space, axis-aligned segments between
// them, and the orientation and intersection tests that drive local knot
// inference and analysis-suitable-T-spline validation.
//
// Every type here is generic over scalar.Scalar, so the same orientation
// arithmetic runs whether the surrounding mesh is parameterized by Float64
// or a fixed-point type — nothing in geom assumes float64 rounding
// behavior.
//
// A T-junction's extension always runs along one axis while sitting at a
// fixed coordinate on the other (see tmesh/asts.go's extensionSegment), so
// geom never needs a general line-line intersection routine: Orientation
// and Segment.Intersects cover every case this module's callers produce.
package geom
