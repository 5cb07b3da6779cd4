package eval

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

// undefinedDenomScale is the multiple of scalar.Delta[T]() below which the
// rational denominator D(s,t) is treated as zero (1e-9 for Float64): no
// control point's basis support reaches (s, t), so the surface is
// undefined there.
const undefinedDenomScale = 1000

// supportOmitScale is the multiple of scalar.Delta[T]() below which an
// individual control point's combined basis weight is small enough to
// omit from the numerator while still counting toward the denominator
// (1e-12 for Float64), avoiding a near-zero/near-zero division inside a
// single term.
const supportOmitScale = 1

// Evaluate computes the surface point at parametric (s, t) as the rational
// sum N(s,t)/D(s,t) = (Σ B_s(i)·B_t(i)·w_i·(x,y,z)_i) / (Σ B_s(i)·B_t(i)·w_i)
// over every control point i whose local knot windows (from knots) bound
// (s, t). It returns false when |D| is below undefinedDenomScale times
// T's Delta — the point lies outside every control point's support, or
// the weights cancel.
func Evaluate[T scalar.Scalar[T]](s, t T, mesh *tmesh.TMesh[T], knots map[tmesh.VertID]tmesh.VertexKnots[T]) (mgl64.Vec3, bool) {
	var numer mgl64.Vec3
	var denom float64
	undefinedDenomTol := scalar.Scale[T](undefinedDenomScale).Float64()
	supportOmitTol := scalar.Scale[T](supportOmitScale).Float64()

	n := mesh.VertexCount()
	for i := 0; i < n; i++ {
		v := tmesh.VertID(i)
		cp, err := mesh.Vertex(v)
		if err != nil {
			continue
		}
		vk, ok := knots[v]
		if !ok {
			continue
		}
		if !inSupport(s, vk.S) || !inSupport(t, vk.T) {
			continue
		}

		bs := CubicBasis(s, vk.S)
		bt := CubicBasis(t, vk.T)
		weight := bs.Float64() * bt.Float64() * cp.Geom[3]
		denom += weight

		if weight < supportOmitTol && weight > -supportOmitTol {
			continue
		}
		numer[0] += weight * cp.Geom[0]
		numer[1] += weight * cp.Geom[1]
		numer[2] += weight * cp.Geom[2]
	}

	if denom < undefinedDenomTol && denom > -undefinedDenomTol {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{numer[0] / denom, numer[1] / denom, numer[2] / denom}, true
}

// inSupport reports whether u lies within the closed span
// [knots[0], knots[4]] covered by a vertex's five-element local knot vector — the cheap bounding-box test
// that lets Evaluate skip CubicBasis entirely for most control points.
func inSupport[T scalar.Scalar[T]](u T, knots [5]T) bool {
	return !u.Less(knots[0]) && (u.Less(knots[4]) || !knots[4].Less(u))
}
