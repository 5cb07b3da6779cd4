// Package tmesh implements the T-mesh: a half-edge (DCEL-style) topology
// whose records are integer handles into three flat, append-only tables
// rather than pointers. A TMesh owns the tables and the mutexes guarding
// them; everything else in this module — local knot inference, ASTS
// validation, tessellation — is built on the read/mutate surface exposed
// here.
package tmesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/arcweave/tspline/geom"
	"github.com/arcweave/tspline/scalar"
)

// VertID, EdgeID, and FaceID are dense, non-negative indices into a
// TMesh's vertex, half-edge, and face tables respectively. NoVert, NoEdge,
// and NoFace mark the absence of a handle (e.g. a boundary half-edge's
// Face, or a half-edge with no twin).
type (
	VertID int
	EdgeID int
	FaceID int
)

const (
	NoVert VertID = -1
	NoEdge EdgeID = -1
	NoFace FaceID = -1
)

// ControlPoint is a vertex of the T-mesh: its rational homogeneous
// geometry, its parametric location, one outgoing half-edge to anchor
// spoke circulation, and whether it is a T-junction (one of its four
// cardinal spokes is missing). IsTJunction is set by whoever builds the
// mesh, such as the seed constructors; knot inference neither sets nor
// reads it.
type ControlPoint[T scalar.Scalar[T]] struct {
	Geom        Vec4
	Param       geom.Point[T]
	Outgoing    EdgeID
	IsTJunction bool
}

// Vec4 is a homogeneous (x, y, z, w) control point position, stored
// un-premultiplied: Geom[3] is the rational weight, not folded into X/Y/Z.
type Vec4 = mgl64.Vec4

// HalfEdge is one directed edge of the mesh: its origin vertex, its twin
// (the same edge walked the other way), the face it bounds (NoFace on the
// mesh boundary), its next/prev neighbors around that face, which
// parametric axis it runs along, and the parametric length (knot
// interval) of that run.
type HalfEdge[T scalar.Scalar[T]] struct {
	Origin       VertID
	Twin         EdgeID
	Face         FaceID
	Next, Prev   EdgeID
	Direction    geom.Axis
	KnotInterval T
}

// Face is a bounded region of the mesh, anchored by one of its interior
// half-edges.
type Face struct {
	Edge EdgeID
}
