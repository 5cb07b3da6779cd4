package tspline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcweave/tspline/eval"
	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

// TessellateResult holds the points sampled across a surface's parametric
// bounding box, in row-major order (t varies slowest), with any undefined
// samples (outside every control point's support) dropped rather than
// reported as a zero point.
type TessellateResult struct {
	Points []mgl64.Vec3
	Rows   int
	Cols   int
}

// Tessellate returns a Command that samples the surface on a
// resolution x resolution grid spanning the mesh's full parametric
// bounding box, evaluating each cell in parallel (bounded by
// GOMAXPROCS), and compacting away undefined samples while preserving
// row-major order among the samples that remain.
func Tessellate[T scalar.Scalar[T]](resolution int) tmesh.Command[T, TessellateResult] {
	return func(mesh *tmesh.TMesh[T]) TessellateResult {
		if resolution < 1 {
			resolution = 1
		}
		minS, maxS, minT, maxT, err := mesh.Bounds()
		if err != nil {
			return TessellateResult{}
		}
		knots := tmesh.BuildKnotCache(mesh)

		// A resolution of 1 collapses the whole grid to its min corner:
		// there is no second sample to span the domain against, so every
		// cell would otherwise divide by zero.
		if resolution == 1 {
			out := make([]mgl64.Vec3, 0, 1)
			if p, ok := eval.Evaluate(minS, minT, mesh, knots); ok {
				out = append(out, p)
			}
			return TessellateResult{Points: out, Rows: 1, Cols: 1}
		}

		n := resolution * resolution
		points := make([]mgl64.Vec3, n)
		defined := make([]bool, n)

		denomS := scalar.Zero[T]().FromInt(resolution - 1)
		denomT := scalar.Zero[T]().FromInt(resolution - 1)
		spanS := maxS.Sub(minS)
		spanT := maxT.Sub(minT)

		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for idx := 0; idx < n; idx++ {
			idx := idx
			g.Go(func() error {
				row := idx / resolution
				col := idx % resolution
				s := minS.Add(spanS.Mul(scalar.Zero[T]().FromInt(col).Div(denomS)))
				t := minT.Add(spanT.Mul(scalar.Zero[T]().FromInt(row).Div(denomT)))
				p, ok := eval.Evaluate(s, t, mesh, knots)
				if ok {
					points[idx] = p
					defined[idx] = true
				}
				return nil
			})
		}
		_ = g.Wait()

		out := make([]mgl64.Vec3, 0, n)
		for i, ok := range defined {
			if ok {
				out = append(out, points[i])
			}
		}
		return TessellateResult{Points: out, Rows: resolution, Cols: resolution}
	}
}
