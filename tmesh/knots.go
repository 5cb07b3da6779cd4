package tmesh

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// VertexKnots holds a control point's local knot vectors: five knot
// values per axis, the window a cubic basis function needs.
type VertexKnots[T scalar.Scalar[T]] struct {
	S, T [5]T
}

// InferKnots computes v's local knot vectors by casting a ray from v in
// each of the four cardinal parametric directions (+S, -S, +T, -T) and
// recording the two knots it encounters along the way, per the half-edge
// topology around v. Inference is infallible: every vertex, including one
// on the mesh boundary, produces a valid five-element knot vector per
// axis via the boundary-fallback rule.
func InferKnots[T scalar.Scalar[T]](m *TMesh[T], v VertID) VertexKnots[T] {
	cp, err := m.Vertex(v)
	if err != nil {
		return VertexKnots[T]{}
	}

	negS := castRay(m, v, cp.Param, geom.AxisS, false)
	posS := castRay(m, v, cp.Param, geom.AxisS, true)
	negT := castRay(m, v, cp.Param, geom.AxisT, false)
	posT := castRay(m, v, cp.Param, geom.AxisT, true)

	s0 := cp.Param.Along(geom.AxisS)
	t0 := cp.Param.Along(geom.AxisT)

	return VertexKnots[T]{
		S: assemble(negS, s0, posS),
		T: assemble(negT, t0, posT),
	}
}

// assemble builds the five-element local knot vector from the two knots
// found on either side of s0, collapsing to a quadruple boundary knot when
// both knots on one side equal s0 (v sits on that boundary of the
// parametric domain).
func assemble[T scalar.Scalar[T]](neg [2]T, s0 T, pos [2]T) [5]T {
	if equalScalar(neg[0], s0) && equalScalar(neg[1], s0) {
		return [5]T{s0, s0, s0, s0, pos[0]}
	}
	if equalScalar(pos[0], s0) && equalScalar(pos[1], s0) {
		return [5]T{neg[0], s0, s0, s0, s0}
	}
	return [5]T{neg[1], neg[0], s0, pos[0], pos[1]}
}

// equalScalar reports a == b using only the Less ordering Scalar exposes
// — T is not required to be comparable (Fixed64's underlying int64 is,
// but the Scalar constraint itself makes no such promise).
func equalScalar[T scalar.Scalar[T]](a, b T) bool {
	return !a.Less(b) && !b.Less(a)
}

// castRay walks the [0]=nearest,[1]=farthest knots found by tracing from
// origin in the given axis/sign direction, following the three-step
// inference rule: edge-following, then face-intersection fallback, then
// boundary fallback. A fallback hit (face-intersection or boundary)
// terminates the ray, filling every remaining slot with the same value.
func castRay[T scalar.Scalar[T]](m *TMesh[T], start VertID, startParam geom.Point[T], axis geom.Axis, positive bool) [2]T {
	var knots [2]T
	gotAny := false
	current := start
	pos := startParam

	for slot := 0; slot < 2; slot++ {
		if next, ok := FindNextVertexInDirection(m, current, axis, positive); ok {
			nextCP, err := m.Vertex(next)
			if err != nil {
				break
			}
			knots[slot] = nextCP.Param.Along(axis)
			current = next
			pos = nextCP.Param
			gotAny = true
			continue
		}

		if hit, ok := faceIntersectionFallback(m, current, pos, axis, positive); ok {
			for s := slot; s < 2; s++ {
				knots[s] = hit
			}
			return knots
		}

		var repeat T
		if gotAny {
			repeat = knots[slot-1]
		} else {
			repeat = startParam.Along(axis)
		}
		for s := slot; s < 2; s++ {
			knots[s] = repeat
		}
		return knots
	}
	return knots
}

// faceIntersectionFallback examines every face incident to v (gathered via
// its spokes, taking both a spoke's own face and its twin's face) and
// tests each bounding edge for a crossing with the axis-aligned ray
// leaving pos in the requested direction. Among crossings strictly ahead
// of pos (by more than scalar.Scale[T](1e6)), it returns the nearest.
func faceIntersectionFallback[T scalar.Scalar[T]](m *TMesh[T], v VertID, pos geom.Point[T], axis geom.Axis, positive bool) (T, bool) {
	faces := incidentFaces(m, v)
	forwardTol := scalar.Scale[T](1_000_000)

	var best T
	found := false
	for _, f := range faces {
		edges, err := m.FaceEdges(f)
		if err != nil {
			continue
		}
		for _, e := range edges {
			he, err := m.Edge(e)
			if err != nil {
				continue
			}
			originCP, err := m.Vertex(he.Origin)
			if err != nil {
				continue
			}
			dest, err := m.destination(e)
			if err != nil {
				continue
			}
			destCP, err := m.Vertex(dest)
			if err != nil {
				continue
			}
			hit, ok := rayEdgeHit(pos, axis, positive, originCP.Param, destCP.Param, forwardTol)
			if !ok {
				continue
			}
			if !found || closerTo(hit, best, pos.Along(axis), positive) {
				best = hit
				found = true
			}
		}
	}
	return best, found
}

func closerTo[T scalar.Scalar[T]](candidate, current, origin T, positive bool) bool {
	if positive {
		return candidate.Less(current)
	}
	return current.Less(candidate)
}

// rayEdgeHit tests the axis-aligned ray leaving pos along axis (positive
// or negative) for a crossing with the segment a-b, returning the
// along-axis coordinate of the crossing. The segment must vary in the
// ray's orthogonal coordinate (otherwise it runs parallel to the ray and
// is skipped); the crossing parameter must lie within [0,1] of the
// segment, and the hit must be strictly ahead of pos by more than tol.
func rayEdgeHit[T scalar.Scalar[T]](pos geom.Point[T], axis geom.Axis, positive bool, a, b geom.Point[T], tol T) (T, bool) {
	zero := scalar.Zero[T]()
	one := scalar.One[T]()

	orthoA, orthoB := a.Ortho(axis), b.Ortho(axis)
	denom := orthoB.Sub(orthoA)
	eps := scalar.Delta[T]()
	if denom.Abs().Less(eps) {
		return zero, false
	}
	target := pos.Ortho(axis)
	u := target.Sub(orthoA).Div(denom)
	if u.Less(zero) || one.Less(u) {
		return zero, false
	}

	alongA, alongB := a.Along(axis), b.Along(axis)
	hit := alongA.Add(u.Mul(alongB.Sub(alongA)))

	diff := hit.Sub(pos.Along(axis))
	if !positive {
		diff = scalar.Neg(diff)
	}
	if !tol.Less(diff) {
		return zero, false
	}
	return hit, true
}

// incidentFaces returns the distinct faces touching v, gathered from both
// sides of each spoke.
func incidentFaces[T scalar.Scalar[T]](m *TMesh[T], v VertID) []FaceID {
	spokes, err := m.spokes(v)
	if err != nil {
		return nil
	}
	seen := map[FaceID]bool{}
	var out []FaceID
	add := func(f FaceID) {
		if f == NoFace || seen[f] {
			return
		}
		seen[f] = true
		out = append(out, f)
	}
	for _, e := range spokes {
		he, err := m.Edge(e)
		if err != nil {
			continue
		}
		add(he.Face)
		if he.Twin != NoEdge {
			twin, err := m.Edge(he.Twin)
			if err == nil {
				add(twin.Face)
			}
		}
	}
	return out
}

// BuildKnotCache computes VertexKnots for every vertex in m, one goroutine
// per vertex bounded by GOMAXPROCS, and returns the result as a map keyed
// by VertID.
func BuildKnotCache[T scalar.Scalar[T]](m *TMesh[T]) map[VertID]VertexKnots[T] {
	n := m.VertexCount()
	results := make([]VertexKnots[T], n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			results[i] = InferKnots(m, VertID(i))
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[VertID]VertexKnots[T], n)
	for i, vk := range results {
		out[VertID(i)] = vk
	}
	return out
}
