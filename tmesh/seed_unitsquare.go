package tmesh

import (
	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// NewUnitSquare builds the simplest possible T-mesh: four corners at
// (0,0), (1,0), (1,1), (0,1), one interior face, and a counter-clockwise
// interior half-edge loop whose boundary twins close a clockwise loop the
// other way. Default geometry places each corner at (s, t, 0, 1) — height
// zero, weight one — so Evaluate(s,t) reduces to (s,t,0).
func NewUnitSquare[T scalar.Scalar[T]]() *TMesh[T] {
	m := New[T]()

	coords := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	verts := make([]VertID, 4)
	for i, c := range coords {
		s := scalar.Zero[T]().FromInt(c[0])
		t := scalar.Zero[T]().FromInt(c[1])
		verts[i] = m.AddVertex(ControlPoint[T]{
			Geom:  Vec4{float64(c[0]), float64(c[1]), 0, 1},
			Param: geom.Point[T]{S: s, T: t},
		})
	}

	// Interior CCW loop v0->v1->v2->v3->v0.
	interior := make([]EdgeID, 4)
	for i := range interior {
		interior[i] = m.AddHalfEdge(HalfEdge[T]{Origin: verts[i]})
	}
	// Boundary CW loop, one twin per interior edge, visiting the same
	// vertices the other way: twin(interior[i]) goes from verts[i+1] to
	// verts[i].
	boundary := make([]EdgeID, 4)
	for i := range boundary {
		boundary[i] = m.AddHalfEdge(HalfEdge[T]{Origin: verts[(i+1)%4]})
	}

	face := m.AddFace(Face{Edge: interior[0]})
	one := scalar.One[T]()
	directions := [4]geom.Axis{geom.AxisS, geom.AxisT, geom.AxisS, geom.AxisT}

	for i := 0; i < 4; i++ {
		next := interior[(i+1)%4]
		prev := interior[(i+3)%4]
		m.SetEdge(interior[i], HalfEdge[T]{
			Origin:       verts[i],
			Twin:         boundary[i],
			Face:         face,
			Next:         next,
			Prev:         prev,
			Direction:    directions[i],
			KnotInterval: one,
		})
	}

	// Boundary cycle derived from the interior loop: next(boundary[i])
	// is the boundary edge whose origin equals interior[i]'s origin,
	// which is boundary[(i+3)%4] (one step back in the interior's
	// indexing, since the boundary runs the opposite way).
	for i := 0; i < 4; i++ {
		next := boundary[(i+3)%4]
		prev := boundary[(i+1)%4]
		m.SetEdge(boundary[i], HalfEdge[T]{
			Origin:       verts[(i+1)%4],
			Twin:         interior[i],
			Face:         NoFace,
			Next:         next,
			Prev:         prev,
			Direction:    directions[i],
			KnotInterval: one,
		})
	}

	for i := range verts {
		cp, _ := m.Vertex(verts[i])
		cp.Outgoing = interior[i]
		m.SetVertex(verts[i], cp)
	}

	return m
}
