package tmesh

import (
	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// ValidateASTS reports whether m, together with its already-inferred knot
// cache, is an analysis-suitable T-spline: no horizontal T-junction
// extension — the line a T-junction's missing spoke would have followed,
// extended across its local knot support — may intersect a vertical one.
// Two extensions of the same family are not checked against each other.
// This is a predicate only;
// the mesh is never repaired or rejected by construction, matching the
// spec's choice to keep ASTS enforcement out of scope for mutation.
func ValidateASTS[T scalar.Scalar[T]](m *TMesh[T], knots map[VertID]VertexKnots[T]) bool {
	var horizontal, vertical []geom.Segment[T]
	for i := 0; i < m.VertexCount(); i++ {
		cp, err := m.Vertex(VertID(i))
		if err != nil || !cp.IsTJunction {
			continue
		}
		vk, ok := knots[VertID(i)]
		if !ok {
			continue
		}
		seg, isHorizontal, ok := extensionSegment(m, VertID(i), cp, vk)
		if !ok {
			continue
		}
		if isHorizontal {
			horizontal = append(horizontal, seg)
		} else {
			vertical = append(vertical, seg)
		}
	}

	eps := scalar.Delta[T]()
	for _, h := range horizontal {
		for _, v := range vertical {
			if h.Intersects(v, eps) {
				return false
			}
		}
	}
	return true
}

// extensionSegment returns the segment a T-junction's missing spoke
// points into: the line through v extended across its own local knot
// support, on the axis the missing spoke would have run along — not the
// axis v still has full valence in. A vertex missing its S-spoke points
// a "horizontal" extension (it varies in S, holding T fixed at v's own
// T); a vertex missing its T-spoke points a "vertical" extension (varies
// in T, S fixed). This matches collect_extensions(dir) in the original
// implementation: the extension's end point varies dir's own coordinate,
// holding the other fixed. The missing axis is whichever cardinal
// direction has no spoke at all. The second return value reports
// whether the segment is the horizontal family (true) or vertical
// (false).
func extensionSegment[T scalar.Scalar[T]](m *TMesh[T], v VertID, cp ControlPoint[T], vk VertexKnots[T]) (geom.Segment[T], bool, bool) {
	_, hasPosS := FindNextVertexInDirection(m, v, geom.AxisS, true)
	_, hasNegS := FindNextVertexInDirection(m, v, geom.AxisS, false)
	_, hasPosT := FindNextVertexInDirection(m, v, geom.AxisT, true)
	_, hasNegT := FindNextVertexInDirection(m, v, geom.AxisT, false)

	missingS := !hasPosS || !hasNegS
	missingT := !hasPosT || !hasNegT
	if missingS == missingT {
		// Either a regular interior vertex or one missing both axes;
		// neither case yields a well-defined single extension line.
		return geom.Segment[T]{}, false, false
	}

	if missingS {
		a := geom.Point[T]{S: vk.S[1], T: cp.Param.T}
		b := geom.Point[T]{S: vk.S[3], T: cp.Param.T}
		return geom.Segment[T]{A: a, B: b}, true, true
	}
	a := geom.Point[T]{S: cp.Param.S, T: vk.T[1]}
	b := geom.Point[T]{S: cp.Param.S, T: vk.T[3]}
	return geom.Segment[T]{A: a, B: b}, false, true
}
