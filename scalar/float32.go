package scalar

import "math"

// Float32 is a single-precision Scalar implementation. Its Delta is set to
// 1e-6, roughly the limit of float32's useful precision over the [0,1]
// parametric range this module operates in.
type Float32 float32

func (f Float32) Add(o Float32) Float32 { return f + o }
func (f Float32) Sub(o Float32) Float32 { return f - o }
func (f Float32) Mul(o Float32) Float32 { return f * o }
func (f Float32) Div(o Float32) Float32 { return f / o }
func (f Float32) Less(o Float32) bool   { return f < o }
func (f Float32) LessEq(o Float32) bool { return f <= o }

func (f Float32) Abs() Float32 {
	return Float32(math.Abs(float64(f)))
}

func (f Float32) FromInt(n int) Float32 {
	return Float32(n)
}

func (f Float32) Delta() Float32 {
	return 1e-6
}

func (f Float32) Float64() float64 {
	return float64(f)
}
