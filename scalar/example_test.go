package scalar_test

import (
	"fmt"

	"github.com/arcweave/tspline/scalar"
)

// ExampleFloat64 demonstrates Float64 satisfying Scalar via ordinary
// float64 arithmetic, and the package-level helpers that construct a
// value of a generic T from nothing but a type witness.
func ExampleFloat64() {
	a := scalar.Float64(3)
	b := scalar.Float64(4)
	fmt.Println(a.Add(b))
	fmt.Println(a.Mul(b))
	fmt.Println(scalar.One[scalar.Float64]())
	fmt.Println(scalar.Scale[scalar.Float64](1_000_000))
	// Output:
	// 7
	// 12
	// 1
	// 1e-06
}
