package tmesh

import "errors"

// Sentinel errors returned by TMesh's accessor and mutation methods,
// following the "tmesh: ..." naming convention used throughout this
// module for package-scoped sentinels.
var (
	ErrVertexNotFound = errors.New("tmesh: vertex not found")
	ErrEdgeNotFound   = errors.New("tmesh: half-edge not found")
	ErrFaceNotFound   = errors.New("tmesh: face not found")
	ErrEmptyMesh      = errors.New("tmesh: mesh has no vertices")
	ErrDegenerateFace = errors.New("tmesh: face loop does not close")
)
