package cpu

import (
	"fmt"

	"github.com/aspisov/depth/internal/tensor"
)

// Reshape returns a view of x under a new shape with the same element count.
func (cpu *CPUBackend) Reshape(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out, err := x.WithShape(shape)
	if err != nil {
		panic(fmt.Sprintf("cpu reshape: %v", err))
	}
	return out
}

// BroadcastTo materializes x expanded to the target shape under NumPy rules.
func (cpu *CPUBackend) BroadcastTo(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	if x.Shape().Equal(shape) {
		return x.Clone()
	}
	expanded, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !expanded.Equal(shape) {
		panic(fmt.Sprintf("cpu broadcast: cannot expand %v to %v", x.Shape(), shape))
	}

	out := mustRaw(shape, x.DType())
	outStrides := shape.ComputeStrides()
	inStrides := broadcastStrides(x.Shape(), shape)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), out.AsFloat32()
		for i := range dst {
			dst[i] = src[flatIndex(i, outStrides, inStrides)]
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), out.AsFloat64()
		for i := range dst {
			dst[i] = src[flatIndex(i, outStrides, inStrides)]
		}
	default:
		panic("cpu broadcast: unsupported dtype " + x.DType().String())
	}
	return out
}
