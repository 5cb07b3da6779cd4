package tmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

func TestNewUnitSquareTopology(t *testing.T) {
	m := tmesh.NewUnitSquare[scalar.Float64]()
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 8, m.EdgeCount())
	require.Equal(t, 1, m.FaceCount())

	edges, err := m.FaceEdges(0)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	for i := 0; i < 4; i++ {
		he, err := m.Edge(edges[i])
		require.NoError(t, err)
		twin, err := m.Edge(he.Twin)
		require.NoError(t, err)
		require.Equal(t, tmesh.NoFace, twin.Face)
		require.Equal(t, he, mustEdge(t, m, twin.Twin))
	}
}

func TestNewUnitSquareCornerGeometry(t *testing.T) {
	m := tmesh.NewUnitSquare[scalar.Float64]()
	wantCoords := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for i, want := range wantCoords {
		cp, err := m.Vertex(tmesh.VertID(i))
		require.NoError(t, err)
		require.Equal(t, want[0], cp.Geom[0])
		require.Equal(t, want[1], cp.Geom[1])
		require.Equal(t, 1.0, cp.Geom[3])
	}
}

func TestNewTJunctionTopology(t *testing.T) {
	m, verts := tmesh.NewTJunction[scalar.Float64]()
	require.Len(t, verts, 8)
	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 3, m.FaceCount())
	require.Equal(t, 20, m.EdgeCount()) // 13 interior + 7 boundary

	center, err := m.Vertex(verts[tmesh.TJCenter])
	require.NoError(t, err)
	require.True(t, center.IsTJunction)

	for i, v := range verts {
		if i == tmesh.TJCenter {
			continue
		}
		cp, err := m.Vertex(v)
		require.NoError(t, err)
		require.False(t, cp.IsTJunction)
	}
}

func TestNewTJunctionBoundaryClosesIntoOneCycle(t *testing.T) {
	m, verts := tmesh.NewTJunction[scalar.Float64]()

	start, ok := m.FindEdge(verts[tmesh.TJBottomLeft], verts[tmesh.TJBottomMid])
	require.True(t, ok)
	he, err := m.Edge(start)
	require.NoError(t, err)
	boundaryStart := he.Twin

	cur := boundaryStart
	steps := 0
	for {
		h, err := m.Edge(cur)
		require.NoError(t, err)
		require.Equal(t, tmesh.NoFace, h.Face)
		cur = h.Next
		steps++
		require.LessOrEqual(t, steps, 7)
		if cur == boundaryStart {
			break
		}
	}
	require.Equal(t, 7, steps)
}

func TestNewSimpleWeightsAndLift(t *testing.T) {
	m, verts := tmesh.NewSimple[scalar.Float64]()
	center, err := m.Vertex(verts[tmesh.TJCenter])
	require.NoError(t, err)
	require.Equal(t, -1.0, center.Geom[2])

	for i, v := range verts {
		cp, err := m.Vertex(v)
		require.NoError(t, err)
		require.NotEqual(t, 0.0, cp.Geom[3])
		if i != tmesh.TJCenter {
			require.Equal(t, 0.0, cp.Geom[2])
		}
	}
}

func TestNewRoundedCubeTopology(t *testing.T) {
	m := tmesh.NewRoundedCube[scalar.Float64]()
	require.Equal(t, 14, m.VertexCount())
	require.Equal(t, 6, m.FaceCount())
	// 24 interior half-edges (4 per face x 6 faces) plus one synthesized
	// boundary half-edge per unwelded net-silhouette edge (14 of the 24
	// have no twin in the original source).
	require.Equal(t, 38, m.EdgeCount())

	for f := 0; f < m.FaceCount(); f++ {
		edges, err := m.FaceEdges(tmesh.FaceID(f))
		require.NoError(t, err)
		require.Len(t, edges, 4)
	}
}

func TestNewRoundedCubeCornerGeometry(t *testing.T) {
	m := tmesh.NewRoundedCube[scalar.Float64]()
	// Vertex 7 sits at the shared corner of the F, R, and Top faces: cube
	// position (1, 1, 1), matching raw_verts index 7 in the original.
	cp, err := m.Vertex(tmesh.VertID(7))
	require.NoError(t, err)
	require.Equal(t, 1.0, cp.Geom[0])
	require.Equal(t, 1.0, cp.Geom[1])
	require.Equal(t, 1.0, cp.Geom[2])
	require.Equal(t, 1.0, cp.Geom[3])
}

func mustEdge(t *testing.T, m *tmesh.TMesh[scalar.Float64], id tmesh.EdgeID) tmesh.HalfEdge[scalar.Float64] {
	t.Helper()
	he, err := m.Edge(id)
	require.NoError(t, err)
	return he
}
