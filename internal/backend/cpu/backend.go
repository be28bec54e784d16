// Package cpu implements the dense-array math backend on the CPU, backed by
// gonum (BLAS for matrix multiplication, floats for contiguous element-wise
// fast paths).
package cpu

import (
	"fmt"

	"github.com/aspisov/depth/internal/tensor"
)

// CPUBackend implements the tensor.Backend kernel set.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// mustRaw allocates a result buffer for a shape produced by a kernel.
func mustRaw(shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to allocate result: %v", err))
	}
	return raw
}

// checkFloatPair panics when a binary kernel receives operands the operator
// layer should have rejected.
func checkFloatPair(name string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("cpu %s: mixed dtypes %s and %s", name, a.DType(), b.DType()))
	}
	if !a.DType().IsFloat() {
		panic(fmt.Sprintf("cpu %s: unsupported dtype %s", name, a.DType()))
	}
}
