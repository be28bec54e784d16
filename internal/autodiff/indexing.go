package autodiff

import (
	"fmt"

	"github.com/aspisov/depth/internal/autodiff/ops"
	"github.com/aspisov/depth/internal/tensor"
)

// Gather selects slices of x along dim with a 1-D int64 index tensor:
// out[..., k, ...] = x[..., index[k], ...]. The index tensor is data, not a
// parent; no gradient flows into it.
func Gather(x *tensor.Tensor, dim int, index *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("gather", x); err != nil {
		return nil, err
	}
	if index.DType() != tensor.Int64 {
		return nil, &tensor.DTypeError{Op: "gather",
			Msg: "index must be int64, got " + index.DType().String()}
	}
	if index.Dim() != 1 {
		return nil, &tensor.ShapeError{Op: "gather",
			Shapes: []tensor.Shape{index.Shape().Clone()},
			Msg:    "index must be 1-D"}
	}
	if err := checkDim("gather", x.Shape(), dim); err != nil {
		return nil, err
	}
	n := x.Shape()[dim]
	for _, j := range index.Raw().AsInt64() {
		if j < 0 || int(j) >= n {
			return nil, &tensor.ShapeError{Op: "gather",
				Shapes: []tensor.Shape{x.Shape().Clone()},
				Msg:    fmt.Sprintf("index %d out of range for dimension %d of size %d", j, dim, n)}
		}
	}

	out := x.Backend().Gather(x.Raw(), dim, index.Raw())
	return tensor.NewNode(out, x.Backend(), ops.NewGatherOp(x, dim, index)), nil
}

// Slice takes the half-open range x[start:stop] along the leading dimension.
// The selected rows are copied; gradient flows back into the sliced positions
// and is zero elsewhere.
func Slice(x *tensor.Tensor, start, stop int) (*tensor.Tensor, error) {
	if err := checkFloat("slice", x); err != nil {
		return nil, err
	}
	shape := x.Shape()
	if len(shape) == 0 {
		return nil, &tensor.ShapeError{Op: "slice",
			Shapes: []tensor.Shape{shape.Clone()},
			Msg:    "cannot slice a scalar"}
	}
	if start < 0 || stop > shape[0] || start >= stop {
		return nil, &tensor.ShapeError{Op: "slice",
			Shapes: []tensor.Shape{shape.Clone()},
			Msg:    fmt.Sprintf("range [%d:%d] invalid for dimension of size %d", start, stop, shape[0])}
	}

	outShape := shape.Clone()
	outShape[0] = stop - start
	offset := start * shape.ComputeStrides()[0]

	out, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		return nil, err
	}
	switch x.DType() {
	case tensor.Float32:
		copy(out.AsFloat32(), x.Raw().AsFloat32()[offset:offset+outShape.NumElements()])
	case tensor.Float64:
		copy(out.AsFloat64(), x.Raw().AsFloat64()[offset:offset+outShape.NumElements()])
	}
	return tensor.NewNode(out, x.Backend(), ops.NewIndexOp(x, offset)), nil
}

// Index subscripts x by one or more leading indices, like x[i] or x[i, j],
// returning the selected sub-tensor. The result's shape drops the indexed
// dimensions; indexing every dimension yields a scalar-shaped tensor.
func Index(x *tensor.Tensor, indices ...int) (*tensor.Tensor, error) {
	if err := checkFloat("index", x); err != nil {
		return nil, err
	}
	shape := x.Shape()
	if len(indices) == 0 || len(indices) > len(shape) {
		return nil, &tensor.ShapeError{Op: "index",
			Shapes: []tensor.Shape{shape.Clone()},
			Msg:    fmt.Sprintf("got %d indices for a %d-D tensor", len(indices), len(shape))}
	}

	strides := shape.ComputeStrides()
	offset := 0
	for k, idx := range indices {
		if idx < 0 || idx >= shape[k] {
			return nil, &tensor.ShapeError{Op: "index",
				Shapes: []tensor.Shape{shape.Clone()},
				Msg:    fmt.Sprintf("index %d out of range for dimension %d of size %d", idx, k, shape[k])}
		}
		offset += idx * strides[k]
	}

	outShape := shape[len(indices):].Clone()
	out, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		return nil, err
	}
	switch x.DType() {
	case tensor.Float32:
		copy(out.AsFloat32(), x.Raw().AsFloat32()[offset:offset+outShape.NumElements()])
	case tensor.Float64:
		copy(out.AsFloat64(), x.Raw().AsFloat64()[offset:offset+outShape.NumElements()])
	}
	return tensor.NewNode(out, x.Backend(), ops.NewIndexOp(x, offset)), nil
}
