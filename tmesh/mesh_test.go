package tmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

func TestNewMeshIsEmpty(t *testing.T) {
	m := tmesh.New[scalar.Float64]()
	require.Equal(t, 0, m.VertexCount())
	require.Equal(t, 0, m.EdgeCount())
	require.Equal(t, 0, m.FaceCount())
}

func TestAccessorsOutOfRange(t *testing.T) {
	m := tmesh.New[scalar.Float64]()
	_, err := m.Vertex(tmesh.VertID(0))
	require.ErrorIs(t, err, tmesh.ErrVertexNotFound)

	_, err = m.Edge(tmesh.EdgeID(0))
	require.ErrorIs(t, err, tmesh.ErrEdgeNotFound)

	_, err = m.Face(tmesh.FaceID(0))
	require.ErrorIs(t, err, tmesh.ErrFaceNotFound)

	err = m.SetVertex(tmesh.VertID(0), tmesh.ControlPoint[scalar.Float64]{})
	require.ErrorIs(t, err, tmesh.ErrVertexNotFound)
}

func TestAddAndFetchVertex(t *testing.T) {
	m := tmesh.New[scalar.Float64]()
	id := m.AddVertex(tmesh.ControlPoint[scalar.Float64]{Geom: tmesh.Vec4{1, 2, 3, 1}})
	cp, err := m.Vertex(id)
	require.NoError(t, err)
	require.Equal(t, tmesh.Vec4{1, 2, 3, 1}, cp.Geom)

	cp.Geom[2] = 9
	require.NoError(t, m.SetVertex(id, cp))

	reread, err := m.Vertex(id)
	require.NoError(t, err)
	require.Equal(t, 9.0, reread.Geom[2])
}
