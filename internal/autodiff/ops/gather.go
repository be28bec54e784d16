package ops

import "github.com/aspisov/depth/internal/tensor"

// GatherOp records advanced indexing along one dimension with an integer
// index tensor: out[..., k, ...] = x[..., index[k], ...].
//
// Backward:
//
//	grad_x += scatter-add of grad_out at the gathered positions
//
// Indices that appear more than once accumulate their contributions; they
// never overwrite each other.
type GatherOp struct {
	x     *tensor.Tensor
	dim   int
	index *tensor.Tensor
}

// NewGatherOp creates a new GatherOp. The index tensor builds no graph edge.
func NewGatherOp(x *tensor.Tensor, dim int, index *tensor.Tensor) *GatherOp {
	return &GatherOp{x: x, dim: dim, index: index}
}

// Inputs returns the operand node [x].
func (op *GatherOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward scatter-adds the gradient back to the gathered positions.
func (op *GatherOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	grad, err := tensor.NewRaw(op.x.Shape(), outputGrad.DType())
	if err != nil {
		panic(err)
	}
	backend.ScatterAdd(grad, op.dim, op.index.Raw(), outputGrad)
	return []*tensor.RawTensor{grad}
}
