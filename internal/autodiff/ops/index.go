package ops

import "github.com/aspisov/depth/internal/tensor"

// IndexOp records selection of a contiguous row-major block, covering both
// subscripting by leading indices (x[i0, i1, ...]) and leading-dimension
// range slices (x[start:stop]).
//
// Backward:
//
//	grad_x += grad_out scattered into the selected positions, zero elsewhere
type IndexOp struct {
	x      *tensor.Tensor
	offset int // flat offset of the selected block
}

// NewIndexOp creates a new IndexOp for the block starting at the given flat
// offset.
func NewIndexOp(x *tensor.Tensor, offset int) *IndexOp {
	return &IndexOp{x: x, offset: offset}
}

// Inputs returns the operand node [x].
func (op *IndexOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward writes the gradient into the selected block of a zero buffer.
func (op *IndexOp) Backward(outputGrad *tensor.RawTensor, _ tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	grad, err := tensor.NewRaw(op.x.Shape(), outputGrad.DType())
	if err != nil {
		panic(err)
	}
	switch outputGrad.DType() {
	case tensor.Float32:
		copy(grad.AsFloat32()[op.offset:], outputGrad.AsFloat32())
	case tensor.Float64:
		copy(grad.AsFloat64()[op.offset:], outputGrad.AsFloat64())
	default:
		panic("index: gradient must be a float tensor")
	}
	return []*tensor.RawTensor{grad}
}
