package tmesh

import (
	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// roundedCubeVert is one row of the rounded cube's vertex table: its
// position in the unfolded cross-net parametric grid (u, v) and its
// position on the unit cube (x, y, z). Grounded bit-for-bit on the
// raw_verts table in original_source/t_spline/src/shapes.rs's
// new_rounded_cube (_examples/original_source/t_spline/src/shapes.rs:84-99)
// — the same 14 grid coordinates and cube corners, in the same order.
type roundedCubeVert struct {
	u, v    int
	x, y, z float64
}

var roundedCubeVerts = [14]roundedCubeVert{
	{0, 1, -1, -1, -1}, // 0
	{1, 1, -1, -1, 1},  // 1
	{2, 1, 1, -1, 1},   // 2
	{3, 1, 1, -1, -1},  // 3
	{4, 1, -1, -1, -1}, // 4
	{0, 2, -1, 1, -1},  // 5
	{1, 2, -1, 1, 1},   // 6
	{2, 2, 1, 1, 1},    // 7
	{3, 2, 1, 1, -1},   // 8
	{4, 2, -1, 1, -1},  // 9
	{1, 0, -1, -1, -1}, // 10
	{2, 0, 1, -1, -1},  // 11
	{1, 3, -1, 1, -1},  // 12
	{2, 3, 1, 1, -1},   // 13
}

// roundedCubeFaceVerts lists, for each of the cube's six net faces, the
// vertex indices of its loop in CCW order (edges[i] runs verts[i] ->
// verts[i+1]). Matches the six add_edge groups in new_rounded_cube:
// L, F, R, B, Bot, Top, in that order.
var roundedCubeFaceVerts = [6][4]int{
	{0, 1, 6, 5},   // L
	{1, 2, 7, 6},   // F
	{2, 3, 8, 7},   // R
	{3, 4, 9, 8},   // B
	{10, 11, 2, 1}, // Bot
	{6, 7, 13, 12}, // Top
}

var roundedCubeAxes = [4]geom.Axis{geom.AxisS, geom.AxisT, geom.AxisS, geom.AxisT}

// roundedCubeTwins lists the five net-internal edges the original welds
// together (the faces share an edge across the unfolded net), identified
// as (face, edge-index-within-that-face's loop) pairs. Every other edge
// has no twin in the original: the net's outer silhouette is left open
// (see NewRoundedCube's doc comment).
var roundedCubeTwins = [5][2][2]int{
	{{0, 1}, {1, 3}}, // L<->F
	{{1, 1}, {2, 3}}, // F<->R
	{{2, 1}, {3, 3}}, // R<->B
	{{1, 0}, {4, 2}}, // F<->Bot
	{{1, 2}, {5, 0}}, // F<->Top
}

// NewRoundedCube builds the six-face cube seed: 14 control points and 24
// interior half-edges forming a closed cube folded out into a 2D net (a
// cross of six unit-square cells: L, F, R, B around the middle row, Bot
// below F and Top above F), each cell's four corners placed at their
// exact unit-cube position.
//
// Ported directly from new_rounded_cube in
// _examples/original_source/t_spline/src/shapes.rs:82-182 — same 14
// vertices, same 6 face loops, same 5 welded interior edges (the net
// seams where adjacent faces actually touch in 3D: L-F, F-R, R-B,
// F-Bot, F-Top). The original leaves the net's outer silhouette (14
// edges) with no twin at all; this port instead synthesizes boundary
// half-edges for them (Face = NoFace, following NewUnitSquare's and
// NewTJunction's convention) so the mesh satisfies the same "every
// half-edge has a twin" invariant the rest of this package relies on —
// the only deliberate departure from the original, and a required one:
// without it, ValidateASTS and spoke circulation would see a half-built
// mesh rather than a genuine (if unwrapped) closed surface.
func NewRoundedCube[T scalar.Scalar[T]]() *TMesh[T] {
	m := New[T]()

	verts := make([]VertID, len(roundedCubeVerts))
	for i, spec := range roundedCubeVerts {
		s := scalar.Zero[T]().FromInt(spec.u)
		t := scalar.Zero[T]().FromInt(spec.v)
		verts[i] = m.AddVertex(ControlPoint[T]{
			Geom:  Vec4{spec.x, spec.y, spec.z, 1},
			Param: geom.Point[T]{S: s, T: t},
		})
	}

	one := scalar.One[T]()
	loops := make([]faceLoop, 6)
	outgoingSet := make([]bool, len(verts))
	for f, idx := range roundedCubeFaceVerts {
		loopVerts := [4]VertID{verts[idx[0]], verts[idx[1]], verts[idx[2]], verts[idx[3]]}
		lens := [4]T{one, one, one, one}
		loops[f] = buildFaceLoop(m, loopVerts[:], roundedCubeAxes[:], lens[:])
		for i, vi := range idx {
			if outgoingSet[vi] {
				continue
			}
			cp, _ := m.Vertex(verts[vi])
			cp.Outgoing = loops[f].edges[i]
			m.SetVertex(verts[vi], cp)
			outgoingSet[vi] = true
		}
	}

	twinned := map[EdgeID]bool{}
	for _, pair := range roundedCubeTwins {
		a := loops[pair[0][0]].edges[pair[0][1]]
		b := loops[pair[1][0]].edges[pair[1][1]]
		weldTwin(m, a, b)
		twinned[a], twinned[b] = true, true
	}

	var open []EdgeID
	for _, l := range loops {
		for _, e := range l.edges {
			if !twinned[e] {
				open = append(open, e)
			}
		}
	}

	boundary := make([]EdgeID, len(open))
	for i, e := range open {
		dest, _ := m.destination(e)
		he, _ := m.Edge(e)
		b := m.AddHalfEdge(HalfEdge[T]{
			Origin:       dest,
			Twin:         e,
			Face:         NoFace,
			Direction:    he.Direction,
			KnotInterval: he.KnotInterval,
		})
		he.Twin = b
		m.SetEdge(e, he)
		boundary[i] = b
	}

	// The open silhouette is a single closed curve (the net's outer
	// perimeter), so next(b) is whichever other boundary edge's origin
	// equals b's destination.
	for _, b := range boundary {
		dest, _ := m.destination(b)
		for _, cand := range boundary {
			if cand == b {
				continue
			}
			ch, _ := m.Edge(cand)
			if ch.Origin == dest {
				bh, _ := m.Edge(b)
				bh.Next = cand
				m.SetEdge(b, bh)
				chPrev, _ := m.Edge(cand)
				chPrev.Prev = b
				m.SetEdge(cand, chPrev)
				break
			}
		}
	}

	return m
}
