package ops

import "github.com/aspisov/depth/internal/tensor"

// SumOp records a full reduction to a scalar: out = sum(x).
//
// Backward:
//
//	grad_x += broadcast(grad_out) over x's entire shape
type SumOp struct {
	x *tensor.Tensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(x *tensor.Tensor) *SumOp {
	return &SumOp{x: x}
}

// Inputs returns the operand node [x].
func (op *SumOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward broadcasts the scalar gradient back over the operand.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	return []*tensor.RawTensor{backend.BroadcastTo(outputGrad, op.x.Shape())}
}

// SumDimOp records a single-axis reduction: out = sum(x, dim, keepDim).
//
// Backward:
//
//	grad_x += broadcast(grad_out) over the reduced dimension
//
// When keepDim is false the gradient is first reshaped back to the keep-dims
// form so the broadcast lines up.
type SumDimOp struct {
	x       *tensor.Tensor
	dim     int
	keepDim bool
}

// NewSumDimOp creates a new SumDimOp.
func NewSumDimOp(x *tensor.Tensor, dim int, keepDim bool) *SumDimOp {
	return &SumDimOp{x: x, dim: dim, keepDim: keepDim}
}

// Inputs returns the operand node [x].
func (op *SumDimOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward broadcasts the gradient back across the reduced axis.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	g := outputGrad
	if !op.keepDim {
		g = keepDims(g, op.x.Shape(), op.dim, backend)
	}
	return []*tensor.RawTensor{backend.BroadcastTo(g, op.x.Shape())}
}
