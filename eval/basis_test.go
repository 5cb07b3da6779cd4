package eval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcweave/tspline/eval"
	"github.com/arcweave/tspline/scalar"
)

func TestCubicBasisPartitionOfUnityAtKnot(t *testing.T) {
	// Four overlapping cubic basis functions over a uniform knot vector
	// 0,1,2,3,4,5,6,7 should sum to 1 anywhere well inside their shared
	// support. Build the four local windows centered progressively later
	// and confirm the sum at u=3 (bang in the middle of the full knot
	// span) is 1.
	windows := [4][5]scalar.Float64{
		{0, 1, 2, 3, 4},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
		{3, 4, 5, 6, 7},
	}
	u := scalar.Float64(3)
	var sum scalar.Float64
	for _, w := range windows {
		sum = sum.Add(eval.CubicBasis(u, w))
	}
	require.InDelta(t, 1.0, float64(sum), 1e-9)
}

func TestCubicBasisZeroOutsideSupport(t *testing.T) {
	window := [5]scalar.Float64{0, 1, 2, 3, 4}
	require.Equal(t, scalar.Float64(0), eval.CubicBasis(scalar.Float64(5), window))
	require.Equal(t, scalar.Float64(0), eval.CubicBasis(scalar.Float64(-1), window))
}

func TestCubicBasisPositiveInsideSupport(t *testing.T) {
	window := [5]scalar.Float64{0, 1, 2, 3, 4}
	require.Greater(t, float64(eval.CubicBasis(scalar.Float64(2), window)), 0.0)
}

func TestCubicBasisAtRightEndpoint(t *testing.T) {
	window := [5]scalar.Float64{0, 1, 2, 3, 4}
	// u == knots[4] is treated as inside the last span, so the basis
	// function is still defined (and non-negative) exactly at u=4.
	v := eval.CubicBasis(scalar.Float64(4), window)
	require.GreaterOrEqual(t, float64(v), 0.0)
}

func TestCubicBasisBoundaryQuadrupleKnot(t *testing.T) {
	// A boundary window like the unit square's corner vertex produces:
	// at u=0 the basis function equals 1 (the classic clamped-spline
	// endpoint-interpolation property).
	window := [5]scalar.Float64{0, 0, 0, 0, 1}
	v := eval.CubicBasis(scalar.Float64(0), window)
	require.InDelta(t, 1.0, float64(v), 1e-9)
}
