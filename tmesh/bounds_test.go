package tmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

func TestBoundsUnitSquare(t *testing.T) {
	m := tmesh.NewUnitSquare[scalar.Float64]()
	minS, maxS, minT, maxT, err := m.Bounds()
	require.NoError(t, err)
	require.Equal(t, scalar.Float64(0), minS)
	require.Equal(t, scalar.Float64(1), maxS)
	require.Equal(t, scalar.Float64(0), minT)
	require.Equal(t, scalar.Float64(1), maxT)
}

func TestBoundsTJunction(t *testing.T) {
	m, _ := tmesh.NewTJunction[scalar.Float64]()
	minS, maxS, minT, maxT, err := m.Bounds()
	require.NoError(t, err)
	require.Equal(t, scalar.Float64(0), minS)
	require.Equal(t, scalar.Float64(2), maxS)
	require.Equal(t, scalar.Float64(0), minT)
	require.Equal(t, scalar.Float64(2), maxT)
}

func TestBoundsEmptyMesh(t *testing.T) {
	m := tmesh.New[scalar.Float64]()
	_, _, _, _, err := m.Bounds()
	require.ErrorIs(t, err, tmesh.ErrEmptyMesh)
}
