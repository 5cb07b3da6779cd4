package tmesh

import "github.com/arcweave/tspline/scalar"

// simpleWeights gives each of NewSimple's 8 vertices a distinct rational
// weight (all but vertex 0's are non-unit), so evaluation genuinely exercises the rational (w != 1)
// path rather than silently degenerating to the polynomial case every
// other seed uses.
var simpleWeights = [8]float64{1.0, 1.2, 0.8, 1.5, 0.9, 1.1, 0.75, 1.3}

// NewSimple builds a scaled-down (half-domain) T-junction mesh with
// non-trivial per-vertex weights and the T-junction vertex's z lifted to
// -1, exercising the same rational-evaluation and knot-inference paths as
// NewTJunction but with a smaller domain and more distinctive geometry.
// Knot intervals come out mixed (0.5 for the regular edges, 1.0 for the
// one edge spanning the removed lattice vertex), matching the "mixed
// intervals 0.5 and 1.0" seed description directly.
func NewSimple[T scalar.Scalar[T]]() (*TMesh[T], []VertID) {
	half := scalar.One[T]().Div(scalar.Zero[T]().FromInt(2))
	m, verts := buildTJunctionTopology(half)

	for i, v := range verts {
		cp, err := m.Vertex(v)
		if err != nil {
			continue
		}
		cp.Geom[3] = simpleWeights[i]
		if i == TJCenter {
			cp.Geom[2] = -1
		}
		m.SetVertex(v, cp)
	}
	return m, verts
}
