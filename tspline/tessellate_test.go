package tspline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcweave/tspline/eval"
	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
	"github.com/arcweave/tspline/tspline"
)

func TestTessellateUnitSquareResolution2(t *testing.T) {
	mesh := tmesh.NewUnitSquare[scalar.Float64]()
	ts := tspline.New(mesh)

	result := tspline.Apply(ts, tspline.Tessellate[scalar.Float64](2))
	require.Len(t, result.Points, 4)

	want := map[[2]float64]bool{
		{0, 0}: false, {1, 0}: false, {1, 1}: false, {0, 1}: false,
	}
	for _, p := range result.Points {
		key := [2]float64{round(p.X()), round(p.Y())}
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, seen := range want {
		require.True(t, seen, "expected corner %v among tessellated points", k)
	}
}

func TestTessellateHigherResolutionStaysInBounds(t *testing.T) {
	mesh := tmesh.NewUnitSquare[scalar.Float64]()
	ts := tspline.New(mesh)

	result := tspline.Apply(ts, tspline.Tessellate[scalar.Float64](5))
	require.Len(t, result.Points, 25)
	for _, p := range result.Points {
		require.GreaterOrEqual(t, p.X(), -1e-9)
		require.LessOrEqual(t, p.X(), 1+1e-9)
		require.GreaterOrEqual(t, p.Y(), -1e-9)
		require.LessOrEqual(t, p.Y(), 1+1e-9)
	}
}

func TestTessellateTJunctionProducesNoUndefinedGaps(t *testing.T) {
	mesh, _ := tmesh.NewTJunction[scalar.Float64]()
	ts := tspline.New(mesh)

	result := tspline.Apply(ts, tspline.Tessellate[scalar.Float64](6))
	require.Equal(t, 36, result.Rows*result.Cols)
	// The T-junction seed's domain is entirely covered by its three
	// faces, so every sampled grid cell should be defined.
	require.Len(t, result.Points, 36)
}

func round(f float64) float64 {
	return float64(int(f*1e6+0.5)) / 1e6
}

func TestTessellateResolutionOneCollapsesToMinCorner(t *testing.T) {
	mesh := tmesh.NewUnitSquare[scalar.Float64]()
	ts := tspline.New(mesh)

	result := tspline.Apply(ts, tspline.Tessellate[scalar.Float64](1))
	require.Equal(t, 1, result.Rows)
	require.Equal(t, 1, result.Cols)
	require.Len(t, result.Points, 1)
	require.InDelta(t, 0, result.Points[0].X(), 1e-9)
	require.InDelta(t, 0, result.Points[0].Y(), 1e-9)
}

func TestTessellateUnitSquareCornerRaised(t *testing.T) {
	mesh := tmesh.NewUnitSquare[scalar.Float64]()
	ts := tspline.New(mesh)

	raiseCorner := tmesh.CommandMut[scalar.Float64, struct{}](func(m *tmesh.TMesh[scalar.Float64]) (struct{}, error) {
		cp, err := m.Vertex(0)
		if err != nil {
			return struct{}{}, err
		}
		cp.Geom[2] = 1.0
		return struct{}{}, m.SetVertex(0, cp)
	})
	_, err := tspline.ApplyMut(ts, raiseCorner)
	require.NoError(t, err)

	result := tspline.Apply(ts, tspline.Tessellate[scalar.Float64](10))
	require.Len(t, result.Points, 100)

	// Vertex 0 sits at grid origin (0,0); its quadruple boundary knots
	// on both axes make the basis interpolate it exactly there.
	origin := result.Points[0]
	opposite := result.Points[len(result.Points)-1]
	require.InDelta(t, 1.0, origin.Z(), 1e-9)
	require.InDelta(t, 0.0, opposite.Z(), 1e-9)
}

func TestTessellateTJunctionSymmetricLift(t *testing.T) {
	mesh, verts := tmesh.NewTJunction[scalar.Float64]()
	center := verts[tmesh.TJCenter]

	lift := tmesh.CommandMut[scalar.Float64, struct{}](func(m *tmesh.TMesh[scalar.Float64]) (struct{}, error) {
		cp, err := m.Vertex(center)
		if err != nil {
			return struct{}{}, err
		}
		cp.Geom[2] = 0.5
		return struct{}{}, m.SetVertex(center, cp)
	})

	ts := tspline.New(mesh)
	_, err := tspline.ApplyMut(ts, lift)
	require.NoError(t, err)

	// Face 1 (bottom-right quad) spans s in [1,2], t in [0,1]; face 2
	// (top-right quad) spans s in [1,2], t in [1,2] — both have
	// parametric area 1.0, and their centers are (1.5, 0.5) and
	// (1.5, 1.5) respectively.
	knots := ts.KnotVectors()
	p1, ok1 := eval.Evaluate(scalar.Float64(1.5), scalar.Float64(0.5), mesh, knots)
	p2, ok2 := eval.Evaluate(scalar.Float64(1.5), scalar.Float64(1.5), mesh, knots)
	require.True(t, ok1)
	require.True(t, ok2)
	require.InDelta(t, p1.Z(), p2.Z(), 1e-9)

	for _, f := range []tmesh.FaceID{1, 2} {
		minS, maxS, minT, maxT := faceBounds(t, mesh, f)
		area := (maxS - minS) * (maxT - minT)
		require.InDelta(t, 1.0, area, 1e-9)
	}
}

func faceBounds(t *testing.T, mesh *tmesh.TMesh[scalar.Float64], f tmesh.FaceID) (minS, maxS, minT, maxT float64) {
	t.Helper()
	edges, err := mesh.FaceEdges(f)
	require.NoError(t, err)
	first := true
	for _, e := range edges {
		he, err := mesh.Edge(e)
		require.NoError(t, err)
		cp, err := mesh.Vertex(he.Origin)
		require.NoError(t, err)
		s, tt := cp.Param.S, cp.Param.T
		if first {
			minS, maxS, minT, maxT = float64(s), float64(s), float64(tt), float64(tt)
			first = false
			continue
		}
		if float64(s) < minS {
			minS = float64(s)
		}
		if float64(s) > maxS {
			maxS = float64(s)
		}
		if float64(tt) < minT {
			minT = float64(tt)
		}
		if float64(tt) > maxT {
			maxT = float64(tt)
		}
	}
	return
}
