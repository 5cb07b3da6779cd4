package tmesh

import (
	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// tjVertexSpec describes one vertex of the T-junction topology before
// scaling: its integer grid coordinate. The T-junction is marked by its
// index (3) in buildTJunctionTopology.
type tjVertexSpec struct {
	s, t int
}

// buildTJunctionTopology constructs the shared 8-vertex, 3-face topology
// used by both NewTJunction and NewSimple: a 3x3 lattice with the
// left-column midpoint removed, leaving a pentagon on the left and two
// quads (bottom-right, top-right) sharing a T-junction at grid position
// (1,1). All coordinates are multiplied by scale, so NewSimple (scale
// 0.5) gets the same shape in half the domain.
//
// See DESIGN.md for the derivation: this construction is chosen because
// it reproduces the spec's exact counts (8 vertices, 13 interior
// half-edges, 7 boundary half-edges, T-junction at grid position (1,1))
// exactly, even though the seed's own prose description of the removed
// vertex is only approximately literal.
func buildTJunctionTopology[T scalar.Scalar[T]](scale T) (*TMesh[T], []VertID) {
	m := New[T]()

	specs := []tjVertexSpec{
		{0, 0}, {1, 0}, {2, 0}, // v0 v1 v2
		{1, 1}, {2, 1}, // v3 (T-junction) v4
		{0, 2}, {1, 2}, {2, 2}, // v5 v6 v7
	}
	verts := make([]VertID, len(specs))
	for i, spec := range specs {
		s := scalar.Zero[T]().FromInt(spec.s).Mul(scale)
		t := scalar.Zero[T]().FromInt(spec.t).Mul(scale)
		verts[i] = m.AddVertex(ControlPoint[T]{
			Geom:        Vec4{s.Float64(), t.Float64(), 0, 1},
			Param:       geom.Point[T]{S: s, T: t},
			IsTJunction: i == 3,
		})
	}
	v0, v1, v2, v3, v4, v5, v6, v7 := verts[0], verts[1], verts[2], verts[3], verts[4], verts[5], verts[6], verts[7]

	one := scale
	two := scale.Add(scale)

	// Pentagon: v0->v1->v3->v6->v5->v0.
	peV := []VertID{v0, v1, v3, v6, v5}
	peAxis := []geom.Axis{geom.AxisS, geom.AxisT, geom.AxisT, geom.AxisS, geom.AxisT}
	peLen := []T{one, one, one, one, two}
	pe := buildFaceLoop(m, peV, peAxis, peLen)

	// Bottom-right quad: v1->v2->v4->v3->v1.
	brV := []VertID{v1, v2, v4, v3}
	brAxis := []geom.Axis{geom.AxisS, geom.AxisT, geom.AxisS, geom.AxisT}
	brLen := []T{one, one, one, one}
	br := buildFaceLoop(m, brV, brAxis, brLen)

	// Top-right quad: v3->v4->v7->v6->v3.
	trV := []VertID{v3, v4, v7, v6}
	trAxis := []geom.Axis{geom.AxisS, geom.AxisT, geom.AxisS, geom.AxisT}
	trLen := []T{one, one, one, one}
	tr := buildFaceLoop(m, trV, trAxis, trLen)

	// Pentagon edge 1 (v1->v3) <-> bottom-right edge 3 (v3->v1).
	weldTwin(m, pe.edges[1], br.edges[3])
	// Pentagon edge 2 (v3->v6) <-> top-right edge 3 (v6->v3).
	weldTwin(m, pe.edges[2], tr.edges[3])
	// Bottom-right edge 2 (v4->v3) <-> top-right edge 0 (v3->v4).
	weldTwin(m, br.edges[2], tr.edges[0])

	// The remaining 7 edges are the outer perimeter. They must be listed
	// here in true geometric cyclic order — v0->v1->v2->v4->v7->v6->v5->v0
	// — since buildBoundaryLoop wires next/prev purely from array
	// adjacency.
	type ref struct {
		loop faceLoop
		idx  int
	}
	perimeter := []ref{
		{pe, 0}, // v0->v1
		{br, 0}, // v1->v2
		{br, 1}, // v2->v4
		{tr, 1}, // v4->v7
		{tr, 2}, // v7->v6
		{pe, 3}, // v6->v5
		{pe, 4}, // v5->v0
	}

	var loopAxis []geom.Axis
	var loopLen []T
	var innerEdges []EdgeID
	for _, r := range perimeter {
		he, _ := m.Edge(r.loop.edges[r.idx])
		loopAxis = append(loopAxis, he.Direction)
		loopLen = append(loopLen, he.KnotInterval)
		innerEdges = append(innerEdges, r.loop.edges[r.idx])
	}

	buildBoundaryLoop(m, loopAxis, loopLen, innerEdges)

	for i, v := range verts {
		cp, _ := m.Vertex(v)
		switch i {
		case 0:
			cp.Outgoing = pe.edges[0]
		case 1:
			cp.Outgoing = br.edges[0]
		case 2:
			cp.Outgoing = br.edges[1]
		case 3:
			cp.Outgoing = br.edges[3]
		case 4:
			cp.Outgoing = br.edges[2]
		case 5:
			cp.Outgoing = pe.edges[4]
		case 6:
			cp.Outgoing = pe.edges[3]
		case 7:
			cp.Outgoing = tr.edges[2]
		}
		m.SetVertex(v, cp)
	}

	return m, verts
}

// faceLoop holds the interior half-edges of one face in loop order,
// along with the face handle itself.
type faceLoop struct {
	face  FaceID
	edges []EdgeID
}

// buildFaceLoop adds len(verts) half-edges forming one interior face loop
// through the given vertices (origin of edge i is verts[i]), wires
// next/prev among them, creates the face, and returns the loop.
func buildFaceLoop[T scalar.Scalar[T]](m *TMesh[T], verts []VertID, axes []geom.Axis, lens []T) faceLoop {
	n := len(verts)
	edges := make([]EdgeID, n)
	for i := range edges {
		edges[i] = m.AddHalfEdge(HalfEdge[T]{Origin: verts[i]})
	}
	face := m.AddFace(Face{Edge: edges[0]})
	for i := 0; i < n; i++ {
		next := edges[(i+1)%n]
		prev := edges[(i+n-1)%n]
		m.SetEdge(edges[i], HalfEdge[T]{
			Origin:       verts[i],
			Face:         face,
			Next:         next,
			Prev:         prev,
			Direction:    axes[i],
			KnotInterval: lens[i],
		})
	}
	return faceLoop{face: face, edges: edges}
}

// weldTwin cross-references the Twin field of two already-placed
// half-edges without disturbing their Next/Prev/Face.
func weldTwin[T scalar.Scalar[T]](m *TMesh[T], a, b EdgeID) {
	ha, _ := m.Edge(a)
	ha.Twin = b
	m.SetEdge(a, ha)
	hb, _ := m.Edge(b)
	hb.Twin = a
	m.SetEdge(b, hb)
}

// buildBoundaryLoop adds one boundary half-edge (Face = NoFace) per
// perimeter interior edge, each starting at that edge's destination and
// running back to its origin, and wires the whole set into a single
// cycle via next(boundary[i]) = boundary[i-1], matching the convention
// established by NewUnitSquare (the boundary loop runs opposite the
// interior loops it borders). inner must already be in true geometric
// cyclic order.
func buildBoundaryLoop[T scalar.Scalar[T]](m *TMesh[T], axes []geom.Axis, lens []T, inner []EdgeID) {
	n := len(inner)
	boundary := make([]EdgeID, n)
	for i, e := range inner {
		dest, _ := m.destination(e)
		boundary[i] = m.AddHalfEdge(HalfEdge[T]{Origin: dest})
	}
	for i := 0; i < n; i++ {
		next := boundary[(i+n-1)%n]
		prev := boundary[(i+1)%n]
		dest, _ := m.destination(inner[i])
		m.SetEdge(boundary[i], HalfEdge[T]{
			Origin:       dest,
			Twin:         inner[i],
			Face:         NoFace,
			Next:         next,
			Prev:         prev,
			Direction:    axes[i],
			KnotInterval: lens[i],
		})
		ih, _ := m.Edge(inner[i])
		ih.Twin = boundary[i]
		m.SetEdge(inner[i], ih)
	}
}

// NewTJunction builds the canonical T-junction seed: a left pentagon and
// two right quads sharing a T-junction vertex, all knot intervals 1
// except the single boundary edge spanning the removed lattice vertex
// (interval 2 — see DESIGN.md). Default geometry is flat (z=0, w=1); see
// the TJ* constants for the vertex indices callers commonly mutate (e.g.
// lifting the T-junction's z for the symmetric-lift testable property).
func NewTJunction[T scalar.Scalar[T]]() (*TMesh[T], []VertID) {
	return buildTJunctionTopology(scalar.One[T]())
}

// The TJ* constants name the role of each vertex NewTJunction and
// NewSimple return, in the order of their []VertID result.
const (
	TJBottomLeft = iota
	TJBottomMid
	TJBottomRight
	TJCenter // the T-junction
	TJMidRight
	TJTopLeft
	TJTopMid
	TJTopRight
)
