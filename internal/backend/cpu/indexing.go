package cpu

import (
	"fmt"

	"github.com/aspisov/depth/internal/tensor"
)

// Gather selects slices along dim using a 1-D int64 index:
// out[..., k, ...] = x[..., index[k], ...]. The output shape is x's shape
// with the dim-th dimension replaced by len(index).
func (cpu *CPUBackend) Gather(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	idx := gatherIndex(x.Shape(), dim, index)
	outer, n, inner := splitAxis(x.Shape(), dim)

	outShape := x.Shape().Clone()
	outShape[dim] = len(idx)
	out := mustRaw(outShape, x.DType())

	switch x.DType() {
	case tensor.Float32:
		gatherAxis(x.AsFloat32(), out.AsFloat32(), idx, outer, n, inner)
	case tensor.Float64:
		gatherAxis(x.AsFloat64(), out.AsFloat64(), idx, outer, n, inner)
	default:
		panic("cpu gather: unsupported dtype " + x.DType().String())
	}
	return out
}

// ScatterAdd accumulates src into dst at the positions a Gather with the same
// dim and index read from: dst[..., index[k], ...] += src[..., k, ...].
// Duplicate indices accumulate, never overwrite.
func (cpu *CPUBackend) ScatterAdd(dst *tensor.RawTensor, dim int, index, src *tensor.RawTensor) {
	idx := gatherIndex(dst.Shape(), dim, index)
	outer, n, inner := splitAxis(dst.Shape(), dim)

	switch dst.DType() {
	case tensor.Float32:
		scatterAddAxis(dst.AsFloat32(), src.AsFloat32(), idx, outer, n, inner)
	case tensor.Float64:
		scatterAddAxis(dst.AsFloat64(), src.AsFloat64(), idx, outer, n, inner)
	default:
		panic("cpu scatteradd: unsupported dtype " + dst.DType().String())
	}
}

// gatherIndex validates the index tensor against the gathered dimension.
func gatherIndex(shape tensor.Shape, dim int, index *tensor.RawTensor) []int64 {
	if index.DType() != tensor.Int64 {
		panic("cpu gather: index must be int64, got " + index.DType().String())
	}
	if len(index.Shape()) != 1 {
		panic(fmt.Sprintf("cpu gather: index must be 1-D, got shape %v", index.Shape()))
	}
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("cpu gather: dimension %d out of range for shape %v", dim, shape))
	}
	idx := index.AsInt64()
	for _, j := range idx {
		if j < 0 || int(j) >= shape[dim] {
			panic(fmt.Sprintf("cpu gather: index %d out of range for dimension of size %d", j, shape[dim]))
		}
	}
	return idx
}

func gatherAxis[T float32 | float64](src, dst []T, idx []int64, outer, n, inner int) {
	m := len(idx)
	for o := 0; o < outer; o++ {
		for k, j := range idx {
			copy(dst[(o*m+k)*inner:(o*m+k+1)*inner], src[(o*n+int(j))*inner:(o*n+int(j)+1)*inner])
		}
	}
}

func scatterAddAxis[T float32 | float64](dst, src []T, idx []int64, outer, n, inner int) {
	m := len(idx)
	for o := 0; o < outer; o++ {
		for k, j := range idx {
			d := dst[(o*n+int(j))*inner : (o*n+int(j)+1)*inner]
			s := src[(o*m+k)*inner : (o*m+k+1)*inner]
			for i := range d {
				d[i] += s[i]
			}
		}
	}
}
