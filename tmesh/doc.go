// Package tmesh implements the T-mesh: a half-edge (DCEL-style) topology
// whose records are integer handles into three flat, append-only tables
// rather than pointers, plus the operations built directly on it — local
// knot inference and analysis-suitable-T-spline (ASTS) validation.
//
// It provides:
//
//   - TMesh itself: AddVertex/AddHalfEdge/AddFace to grow the tables,
//     Vertex/Edge/Face/SetVertex/SetEdge to read and rewrite a row in
//     place, and FaceEdges/FindEdge/Bounds for the read-only queries a
//     caller typically needs.
//   - Command and CommandMut, the two function types tspline.Apply and
//     tspline.ApplyMut run against a mesh — an arbitrary read or
//     read-write operation, rather than a fixed method set.
//   - Seed constructors (NewUnitSquare, NewTJunction, NewSimple,
//     NewRoundedCube) building known-good topologies for tests and
//     examples, each grounded on a specific shape in the original
//     implementation (see DESIGN.md).
//   - InferKnots / BuildKnotCache: per-vertex local knot vector inference
//     by ray-casting through the half-edge topology, with a
//     face-intersection and boundary-repetition fallback so every vertex,
//     including one on the mesh boundary, produces a valid result.
//   - ValidateASTS: the pairwise crossing check between T-junction
//     extensions that decides whether a mesh is analysis-suitable.
//
// A vertex is a T-junction candidate the moment it has only three of its
// four cardinal spokes; FindNextVertexInDirection is the primitive both
// knot inference and ASTS validation use to discover which spokes exist.
package tmesh
