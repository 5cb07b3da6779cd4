package tmesh

import "github.com/arcweave/tspline/scalar"

// Command is a read-only operation over a mesh: any unary function from
// *TMesh[T] to a result type R satisfies it, no explicit interface
// implementation required. tspline.Apply runs a Command under a read
// lock.
type Command[T scalar.Scalar[T], R any] func(mesh *TMesh[T]) R

// CommandMut is a mutating operation over a mesh: it may rewrite vertices,
// edges, or faces and returns its result alongside an error — a
// degenerate mutation (one that would break a topology invariant) should
// report an error and leave the mesh unchanged rather than panic.
// tspline.ApplyMut runs a CommandMut under a write lock and rebuilds the
// knot cache afterward.
type CommandMut[T scalar.Scalar[T], R any] func(mesh *TMesh[T]) (R, error)
