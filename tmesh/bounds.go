package tmesh

// Bounds computes the parametric bounding box of every vertex in the
// mesh in a single pass. It returns ErrEmptyMesh for a mesh with no
// vertices.
func (m *TMesh[T]) Bounds() (minS, maxS, minT, maxT T, err error) {
	n := m.VertexCount()
	if n == 0 {
		err = ErrEmptyMesh
		return
	}
	first, ferr := m.Vertex(0)
	if ferr != nil {
		err = ferr
		return
	}
	minS, maxS = first.Param.S, first.Param.S
	minT, maxT = first.Param.T, first.Param.T

	for i := 1; i < n; i++ {
		cp, verr := m.Vertex(VertID(i))
		if verr != nil {
			continue
		}
		if cp.Param.S.Less(minS) {
			minS = cp.Param.S
		}
		if maxS.Less(cp.Param.S) {
			maxS = cp.Param.S
		}
		if cp.Param.T.Less(minT) {
			minT = cp.Param.T
		}
		if maxT.Less(cp.Param.T) {
			maxT = cp.Param.T
		}
	}
	return
}
