package cpu

import (
	"fmt"

	"github.com/aspisov/depth/internal/tensor"
)

// binOp tags the element-wise binary kernels sharing the broadcast driver.
type binOp int

const (
	opAdd binOp = iota
	opMul
	opDiv
	opEqual
	opGreater
)

// broadcastStrides computes strides for reading inShape as if it were
// expanded to outShape: padded and size-1 dimensions get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)
	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			strides[i] = 0
		} else {
			strides[i] = origStrides[inIdx]
		}
	}
	return strides
}

// flatIndex maps an output flat index to a source flat index under
// broadcast-adjusted strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	idx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		idx += coord * inStrides[i]
	}
	return idx
}

// kernel returns the scalar function for a binary op. Comparison kernels
// produce 0/1 masks in the operand dtype.
func kernel[T float32 | float64](op binOp) func(T, T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	case opEqual:
		return func(x, y T) T {
			if x == y {
				return 1
			}
			return 0
		}
	case opGreater:
		return func(x, y T) T {
			if x > y {
				return 1
			}
			return 0
		}
	default:
		panic("cpu: unknown binary op")
	}
}

// binary is the generic driver for element-wise binary kernels with
// NumPy-style broadcasting. Same-shape float64 operands take the gonum fast
// paths in elementwise.go before reaching here.
func (cpu *CPUBackend) binary(name string, op binOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	checkFloatPair(name, a, b)

	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("cpu %s: %v", name, err))
	}
	out := mustRaw(outShape, a.DType())

	switch a.DType() {
	case tensor.Float32:
		broadcastLoop(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(),
			a.Shape(), b.Shape(), outShape, kernel[float32](op))
	case tensor.Float64:
		broadcastLoop(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(),
			a.Shape(), b.Shape(), outShape, kernel[float64](op))
	}
	return out
}

// broadcastLoop applies f element-wise, reading the operands through
// broadcast-adjusted strides.
func broadcastLoop[T float32 | float64](dst, av, bv []T, aShape, bShape, outShape tensor.Shape, f func(T, T) T) {
	if aShape.Equal(bShape) {
		for i := range dst {
			dst[i] = f(av[i], bv[i])
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = f(av[flatIndex(i, outStrides, aStrides)], bv[flatIndex(i, outStrides, bStrides)])
	}
}
