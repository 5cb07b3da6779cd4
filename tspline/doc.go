// Package tspline ties a tmesh.TMesh to its cached local knot vectors and
// exposes the operations a caller actually wants from the combination:
// running a read-only or mutating Command against the mesh, tessellating
// the surface into a point grid, and checking analysis-suitability.
//
// New builds the knot cache eagerly, so the first KnotVectors or
// ValidateASTS call never pays for it; Tessellate builds its own knot
// cache from the mesh on every call. Apply and ApplyMut are package-level
// functions rather than methods because Go forbids a method from
// declaring type parameters beyond those bound to its receiver, and both
// need an independent result type parameter; ApplyMut additionally
// rebuilds the knot cache after every mutation, so a caller never has to
// remember to do it themselves.
package tspline
