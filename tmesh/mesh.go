package tmesh

import (
	"sync"

	"github.com/arcweave/tspline/scalar"
)

// TMesh is a half-edge mesh over a generic parametric scalar T. Its three
// tables are append-only: mutation adds rows or rewrites existing ones in
// place, but indices are never reused or shifted, so a VertID/EdgeID/FaceID
// handed out earlier always refers to the same logical row (or a tombstone
// state, in the case of a future removal — the current command set never
// removes rows, only rewrites geometry and topology).
//
// Each table has its own RWMutex, matching the teacher's muVert/muEdgeAdj
// split: a method never holds two of these locks at once, so there is no
// lock-ordering hazard to reason about across AddVertex/AddHalfEdge/AddFace.
type TMesh[T scalar.Scalar[T]] struct {
	muVerts sync.RWMutex
	verts   []ControlPoint[T]

	muEdges sync.RWMutex
	edges   []HalfEdge[T]

	muFaces sync.RWMutex
	faces   []Face
}

// New returns an empty mesh with no vertices, edges, or faces.
func New[T scalar.Scalar[T]]() *TMesh[T] {
	return &TMesh[T]{}
}

// AddVertex appends a control point and returns its handle.
func (m *TMesh[T]) AddVertex(cp ControlPoint[T]) VertID {
	m.muVerts.Lock()
	defer m.muVerts.Unlock()
	m.verts = append(m.verts, cp)
	return VertID(len(m.verts) - 1)
}

// AddHalfEdge appends a half-edge and returns its handle.
func (m *TMesh[T]) AddHalfEdge(he HalfEdge[T]) EdgeID {
	m.muEdges.Lock()
	defer m.muEdges.Unlock()
	m.edges = append(m.edges, he)
	return EdgeID(len(m.edges) - 1)
}

// AddFace appends a face and returns its handle.
func (m *TMesh[T]) AddFace(f Face) FaceID {
	m.muFaces.Lock()
	defer m.muFaces.Unlock()
	m.faces = append(m.faces, f)
	return FaceID(len(m.faces) - 1)
}

// Vertex returns the control point at id.
func (m *TMesh[T]) Vertex(id VertID) (ControlPoint[T], error) {
	m.muVerts.RLock()
	defer m.muVerts.RUnlock()
	if id < 0 || int(id) >= len(m.verts) {
		return ControlPoint[T]{}, ErrVertexNotFound
	}
	return m.verts[id], nil
}

// SetVertex overwrites the control point at id in place.
func (m *TMesh[T]) SetVertex(id VertID, cp ControlPoint[T]) error {
	m.muVerts.Lock()
	defer m.muVerts.Unlock()
	if id < 0 || int(id) >= len(m.verts) {
		return ErrVertexNotFound
	}
	m.verts[id] = cp
	return nil
}

// Edge returns the half-edge at id.
func (m *TMesh[T]) Edge(id EdgeID) (HalfEdge[T], error) {
	m.muEdges.RLock()
	defer m.muEdges.RUnlock()
	if id < 0 || int(id) >= len(m.edges) {
		return HalfEdge[T]{}, ErrEdgeNotFound
	}
	return m.edges[id], nil
}

// SetEdge overwrites the half-edge at id in place.
func (m *TMesh[T]) SetEdge(id EdgeID, he HalfEdge[T]) error {
	m.muEdges.Lock()
	defer m.muEdges.Unlock()
	if id < 0 || int(id) >= len(m.edges) {
		return ErrEdgeNotFound
	}
	m.edges[id] = he
	return nil
}

// Face returns the face at id.
func (m *TMesh[T]) Face(id FaceID) (Face, error) {
	m.muFaces.RLock()
	defer m.muFaces.RUnlock()
	if id < 0 || int(id) >= len(m.faces) {
		return Face{}, ErrFaceNotFound
	}
	return m.faces[id], nil
}

// VertexCount, EdgeCount, and FaceCount report the size of each table.
func (m *TMesh[T]) VertexCount() int {
	m.muVerts.RLock()
	defer m.muVerts.RUnlock()
	return len(m.verts)
}

func (m *TMesh[T]) EdgeCount() int {
	m.muEdges.RLock()
	defer m.muEdges.RUnlock()
	return len(m.edges)
}

func (m *TMesh[T]) FaceCount() int {
	m.muFaces.RLock()
	defer m.muFaces.RUnlock()
	return len(m.faces)
}
