package cpu

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/aspisov/depth/internal/tensor"
)

// MulScalar multiplies every element by s.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, s float64) *tensor.RawTensor {
	out := mustRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), out.AsFloat32()
		f := float32(s)
		for i := range src {
			dst[i] = src[i] * f
		}
	case tensor.Float64:
		floats.ScaleTo(out.AsFloat64(), s, x.AsFloat64())
	default:
		panic("cpu mulscalar: unsupported dtype " + x.DType().String())
	}
	return out
}

// Pow raises every element to a constant exponent.
func (cpu *CPUBackend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return cpu.unary("pow", x, func(v float64) float64 { return math.Pow(v, exponent) })
}

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, math.Exp)
}

// Log computes the element-wise natural logarithm.
// Inputs must be positive; non-positive values produce NaN/-Inf as in the
// underlying math library.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, math.Log)
}

// unary applies f element-wise, preserving shape and dtype.
func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	out := mustRaw(x.Shape(), x.DType())
	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), out.AsFloat32()
		for i := range src {
			dst[i] = float32(f(float64(src[i])))
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), out.AsFloat64()
		for i := range src {
			dst[i] = f(src[i])
		}
	default:
		panic("cpu " + name + ": unsupported dtype " + x.DType().String())
	}
	return out
}
