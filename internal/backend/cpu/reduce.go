package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/aspisov/depth/internal/tensor"
)

// Sum reduces every element to a scalar-shaped tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := mustRaw(tensor.Shape{}, x.DType())
	switch x.DType() {
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		out.AsFloat32()[0] = sum
	case tensor.Float64:
		out.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	default:
		panic("cpu sum: unsupported dtype " + x.DType().String())
	}
	return out
}

// Max reduces every element to the scalar maximum.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	out := mustRaw(tensor.Shape{}, x.DType())
	switch x.DType() {
	case tensor.Float32:
		data := x.AsFloat32()
		m := data[0]
		for _, v := range data[1:] {
			if v > m {
				m = v
			}
		}
		out.AsFloat32()[0] = m
	case tensor.Float64:
		out.AsFloat64()[0] = floats.Max(x.AsFloat64())
	default:
		panic("cpu max: unsupported dtype " + x.DType().String())
	}
	return out
}

// SumDim sums along a single dimension. With keepDim the reduced dimension
// stays as size 1, otherwise it is dropped.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	outer, n, inner := splitAxis(x.Shape(), dim)
	out := mustRaw(reducedShape(x.Shape(), dim, keepDim), x.DType())

	switch x.DType() {
	case tensor.Float32:
		reduceAxis(x.AsFloat32(), out.AsFloat32(), outer, n, inner,
			func(acc, v float32) float32 { return acc + v })
	case tensor.Float64:
		reduceAxis(x.AsFloat64(), out.AsFloat64(), outer, n, inner,
			func(acc, v float64) float64 { return acc + v })
	default:
		panic("cpu sumdim: unsupported dtype " + x.DType().String())
	}
	return out
}

// MaxDim takes the maximum along a single dimension.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	outer, n, inner := splitAxis(x.Shape(), dim)
	out := mustRaw(reducedShape(x.Shape(), dim, keepDim), x.DType())

	maxKernel := func(acc, v float64) float64 {
		if v > acc {
			return v
		}
		return acc
	}
	switch x.DType() {
	case tensor.Float32:
		reduceAxis(x.AsFloat32(), out.AsFloat32(), outer, n, inner,
			func(acc, v float32) float32 { return float32(maxKernel(float64(acc), float64(v))) })
	case tensor.Float64:
		reduceAxis(x.AsFloat64(), out.AsFloat64(), outer, n, inner, maxKernel)
	default:
		panic("cpu maxdim: unsupported dtype " + x.DType().String())
	}
	return out
}

// splitAxis factors a shape around dim into (outer, axis length, inner)
// element counts for contiguous row-major traversal.
func splitAxis(shape tensor.Shape, dim int) (outer, n, inner int) {
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("cpu reduce: dimension %d out of range for shape %v", dim, shape))
	}
	outer, n, inner = 1, shape[dim], 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	return outer, n, inner
}

// reducedShape is the output shape of a single-axis reduction.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	out = append(out, shape[:dim]...)
	return append(out, shape[dim+1:]...)
}

// reduceAxis folds f over the reduced axis, seeding the accumulator with the
// first slab so max reductions need no sentinel.
func reduceAxis[T float32 | float64](src, dst []T, outer, n, inner int, f func(T, T) T) {
	for o := 0; o < outer; o++ {
		base := o * n * inner
		copy(dst[o*inner:(o+1)*inner], src[base:base+inner])
		for j := 1; j < n; j++ {
			row := base + j*inner
			for i := 0; i < inner; i++ {
				dst[o*inner+i] = f(dst[o*inner+i], src[row+i])
			}
		}
	}
}
