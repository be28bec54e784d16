package cpu

import (
	"gonum.org/v1/gonum/floats"

	"github.com/aspisov/depth/internal/tensor"
)

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() == tensor.Float64 && a.Shape().Equal(b.Shape()) {
		out := mustRaw(a.Shape(), tensor.Float64)
		floats.AddTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		return out
	}
	return cpu.binary("add", opAdd, a, b)
}

// Mul performs element-wise multiplication with NumPy-style broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() == tensor.Float64 && a.Shape().Equal(b.Shape()) {
		out := mustRaw(a.Shape(), tensor.Float64)
		floats.MulTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		return out
	}
	return cpu.binary("mul", opMul, a, b)
}

// Div performs element-wise division with NumPy-style broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() == tensor.Float64 && a.Shape().Equal(b.Shape()) {
		out := mustRaw(a.Shape(), tensor.Float64)
		floats.DivTo(out.AsFloat64(), a.AsFloat64(), b.AsFloat64())
		return out
	}
	return cpu.binary("div", opDiv, a, b)
}

// Equal returns a 0/1 mask marking positions where a == b, with broadcasting.
// Ties in reductions are detected with it, so exact comparison is intended.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("equal", opEqual, a, b)
}

// Greater returns a 0/1 mask marking positions where a > b, with broadcasting.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("greater", opGreater, a, b)
}
