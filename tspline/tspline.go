// Package tspline ties a T-mesh to its knot cache and exposes the two
// operations a caller actually wants from the combination: running a
// read-only or mutating Command against the mesh, and tessellating the
// surface into a point grid.
package tspline

import (
	"sync"

	"github.com/arcweave/tspline/scalar"
	"github.com/arcweave/tspline/tmesh"
)

// TSpline wraps a mesh together with its eagerly built, cached local knot
// vectors. muMesh guards both: a tessellation in progress and a mutating
// Apply must never interleave, or the grid could read a half-updated
// mesh.
type TSpline[T scalar.Scalar[T]] struct {
	muMesh sync.RWMutex
	mesh   *tmesh.TMesh[T]
	knots  map[tmesh.VertID]tmesh.VertexKnots[T]
}

// New wraps mesh, computing its knot cache immediately so the first
// KnotVectors or ValidateASTS call never pays for it. Tessellate does not
// read this cache; it builds its own from the mesh on every call.
func New[T scalar.Scalar[T]](mesh *tmesh.TMesh[T]) *TSpline[T] {
	return &TSpline[T]{
		mesh:  mesh,
		knots: tmesh.BuildKnotCache(mesh),
	}
}

// Mesh returns the wrapped mesh itself, for callers (writers, previewers,
// editor commands) that only need read access and would rather not go
// through a Command for every query.
func (ts *TSpline[T]) Mesh() *tmesh.TMesh[T] {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh
}

// IntoMesh consumes ts and returns the mesh it wrapped, discarding the
// knot cache. ts must not be used afterward.
func (ts *TSpline[T]) IntoMesh() *tmesh.TMesh[T] {
	ts.muMesh.Lock()
	defer ts.muMesh.Unlock()
	return ts.mesh
}

// Vertex, Edge, Face, FaceEdges, FindEdge, and Bounds mirror the
// corresponding TMesh accessors under ts's read lock, so a caller never
// needs to reach past the wrapper to read topology.
func (ts *TSpline[T]) Vertex(id tmesh.VertID) (tmesh.ControlPoint[T], error) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.Vertex(id)
}

func (ts *TSpline[T]) Edge(id tmesh.EdgeID) (tmesh.HalfEdge[T], error) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.Edge(id)
}

func (ts *TSpline[T]) Face(id tmesh.FaceID) (tmesh.Face, error) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.Face(id)
}

func (ts *TSpline[T]) FaceEdges(f tmesh.FaceID) ([]tmesh.EdgeID, error) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.FaceEdges(f)
}

func (ts *TSpline[T]) FindEdge(u, v tmesh.VertID) (tmesh.EdgeID, bool) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.FindEdge(u, v)
}

func (ts *TSpline[T]) Bounds() (minS, maxS, minT, maxT T, err error) {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return ts.mesh.Bounds()
}

// KnotVectors returns the cached local knot vector for every vertex.
func (ts *TSpline[T]) KnotVectors() map[tmesh.VertID]tmesh.VertexKnots[T] {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	out := make(map[tmesh.VertID]tmesh.VertexKnots[T], len(ts.knots))
	for k, v := range ts.knots {
		out[k] = v
	}
	return out
}

// ValidateASTS reports whether the wrapped mesh, with its current knot
// cache, is an analysis-suitable T-spline.
func (ts *TSpline[T]) ValidateASTS() bool {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return tmesh.ValidateASTS(ts.mesh, ts.knots)
}

// Apply runs a read-only Command against ts's mesh under a read lock. It
// is a package-level function rather than a method because Go forbids a
// method from declaring type parameters beyond those bound to its
// receiver, and Apply needs an independent result type parameter R.
func Apply[T scalar.Scalar[T], R any](ts *TSpline[T], cmd tmesh.Command[T, R]) R {
	ts.muMesh.RLock()
	defer ts.muMesh.RUnlock()
	return cmd(ts.mesh)
}

// ApplyMut runs a mutating CommandMut against ts's mesh under a write
// lock, then rebuilds the knot cache to reflect whatever topology or
// geometry change cmd made. Same free-function reasoning as Apply.
func ApplyMut[T scalar.Scalar[T], R any](ts *TSpline[T], cmd tmesh.CommandMut[T, R]) (R, error) {
	ts.muMesh.Lock()
	defer ts.muMesh.Unlock()
	result, err := cmd(ts.mesh)
	if err != nil {
		var zero R
		return zero, err
	}
	ts.knots = tmesh.BuildKnotCache(ts.mesh)
	return result, nil
}
