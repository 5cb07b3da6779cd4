package scalar

import "math"

// Float64 is the default Scalar implementation: a thin wrapper over the
// built-in float64 that satisfies Scalar[Float64]. Delta is set to 1e-12,
// matching the tolerance the original ray-tracing and rational-evaluation
// algorithms were tuned against.
type Float64 float64

func (f Float64) Add(o Float64) Float64 { return f + o }
func (f Float64) Sub(o Float64) Float64 { return f - o }
func (f Float64) Mul(o Float64) Float64 { return f * o }
func (f Float64) Div(o Float64) Float64 { return f / o }
func (f Float64) Less(o Float64) bool   { return f < o }
func (f Float64) LessEq(o Float64) bool { return f <= o }

func (f Float64) Abs() Float64 {
	return Float64(math.Abs(float64(f)))
}

func (f Float64) FromInt(n int) Float64 {
	return Float64(n)
}

func (f Float64) Delta() Float64 {
	return 1e-12
}

func (f Float64) Float64() float64 {
	return float64(f)
}
