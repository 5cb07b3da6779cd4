// Package eval computes points on a T-spline surface from a mesh and its
// already-inferred knot cache: CubicBasis evaluates a single cubic
// B-spline basis function via the Cox-de Boor recurrence, and Evaluate
// combines every control point's basis weight into the rational
// tensor-product sum N(s,t)/D(s,t) that produces the final 3D point.
//
// Evaluate converts each basis weight from the generic Scalar to float64
// (via T.Float64()) before summing it: surface geometry is always
// expressed in float64 regardless of which Scalar the surrounding mesh is
// parameterized over, since the output feeds straight into mgl64.Vec3.
package eval
