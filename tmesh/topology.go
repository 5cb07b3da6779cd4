package tmesh

import (
	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// FaceEdges returns the half-edges bounding f, in face-loop order,
// starting from f's anchor edge. It follows Next until it returns to the
// start; a face whose loop does not close within EdgeCount()+1 steps is
// reported as ErrDegenerateFace rather than looping forever.
func (m *TMesh[T]) FaceEdges(f FaceID) ([]EdgeID, error) {
	face, err := m.Face(f)
	if err != nil {
		return nil, err
	}
	limit := m.EdgeCount() + 1
	out := []EdgeID{face.Edge}
	cur := face.Edge
	for i := 0; i < limit; i++ {
		he, err := m.Edge(cur)
		if err != nil {
			return nil, err
		}
		if he.Next == face.Edge {
			return out, nil
		}
		out = append(out, he.Next)
		cur = he.Next
	}
	return nil, ErrDegenerateFace
}

// destination returns the vertex a half-edge points to: the origin of its
// twin, per the invariant twin(e).Origin == next(e).Origin.
func (m *TMesh[T]) destination(e EdgeID) (VertID, error) {
	he, err := m.Edge(e)
	if err != nil {
		return NoVert, err
	}
	if he.Twin == NoEdge {
		next, err := m.Edge(he.Next)
		if err != nil {
			return NoVert, err
		}
		return next.Origin, nil
	}
	twin, err := m.Edge(he.Twin)
	if err != nil {
		return NoVert, err
	}
	return twin.Origin, nil
}

// spokes returns the outgoing half-edges at v, in rotation order, by
// repeatedly following twin(prev(e)) starting from v's anchor outgoing
// edge. The walk stops once it returns to the start or hits a half-edge
// with no twin (an open boundary fan).
func (m *TMesh[T]) spokes(v VertID) ([]EdgeID, error) {
	cp, err := m.Vertex(v)
	if err != nil {
		return nil, err
	}
	if cp.Outgoing == NoEdge {
		return nil, nil
	}
	limit := m.EdgeCount() + 1
	out := []EdgeID{cp.Outgoing}
	cur := cp.Outgoing
	for i := 0; i < limit; i++ {
		he, err := m.Edge(cur)
		if err != nil {
			return nil, err
		}
		prev, err := m.Edge(he.Prev)
		if err != nil {
			return nil, err
		}
		if prev.Twin == NoEdge {
			return out, nil
		}
		if prev.Twin == cp.Outgoing {
			return out, nil
		}
		out = append(out, prev.Twin)
		cur = prev.Twin
	}
	return out, nil
}

// FindEdge returns the half-edge whose origin is u and whose destination
// is v, if one exists among u's spokes.
func (m *TMesh[T]) FindEdge(u, v VertID) (EdgeID, bool) {
	spokes, err := m.spokes(u)
	if err != nil {
		return NoEdge, false
	}
	for _, e := range spokes {
		dest, err := m.destination(e)
		if err != nil {
			continue
		}
		if dest == v {
			return e, true
		}
	}
	return NoEdge, false
}

// FindNextVertexInDirection walks the spokes at v and returns the
// destination of the first one whose parametric delta lies on axis (its
// orthogonal component is below tolerance) with the requested sign: a
// positive delta along axis if positive is true, negative otherwise. Both
// the orthogonal and along-axis comparisons use scalar.Scale[T](1) (i.e.
// the type's raw Delta).
func FindNextVertexInDirection[T scalar.Scalar[T]](m *TMesh[T], v VertID, axis geom.Axis, positive bool) (VertID, bool) {
	origin, err := m.Vertex(v)
	if err != nil {
		return NoVert, false
	}
	spokes, err := m.spokes(v)
	if err != nil {
		return NoVert, false
	}
	eps := scalar.Delta[T]()
	negEps := scalar.Neg(eps)

	for _, e := range spokes {
		dest, err := m.destination(e)
		if err != nil {
			continue
		}
		destCP, err := m.Vertex(dest)
		if err != nil {
			continue
		}
		delta := destCP.Param.Sub(origin.Param)
		if !delta.Ortho(axis).Abs().Less(eps) {
			continue
		}
		along := delta.Along(axis)
		if positive {
			if eps.Less(along) {
				return dest, true
			}
		} else {
			if along.Less(negEps) {
				return dest, true
			}
		}
	}
	return NoVert, false
}
