package ops

import "github.com/aspisov/depth/internal/tensor"

// MaxOp records a full max reduction: out = max(x).
//
// Backward:
//
//	grad_x += grad_out * (x == out)
//
// Ties split the gradient onto every maximal element, an accepted
// approximation rather than exact subgradient selection.
type MaxOp struct {
	x   *tensor.Tensor
	out *tensor.RawTensor
}

// NewMaxOp creates a new MaxOp.
func NewMaxOp(x *tensor.Tensor, out *tensor.RawTensor) *MaxOp {
	return &MaxOp{x: x, out: out}
}

// Inputs returns the operand node [x].
func (op *MaxOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward routes the gradient to the maximal positions.
func (op *MaxOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	mask := backend.Equal(op.x.Raw(), op.out)
	return []*tensor.RawTensor{backend.Mul(mask, outputGrad)}
}

// MaxDimOp records a single-axis max reduction: out = max(x, dim, keepDim).
//
// Backward:
//
//	grad_x += broadcast(grad_out) * (x == broadcast(out))
//
// with the same tie-splitting behaviour as MaxOp along the reduced axis.
type MaxDimOp struct {
	x       *tensor.Tensor
	out     *tensor.RawTensor
	dim     int
	keepDim bool
}

// NewMaxDimOp creates a new MaxDimOp.
func NewMaxDimOp(x *tensor.Tensor, out *tensor.RawTensor, dim int, keepDim bool) *MaxDimOp {
	return &MaxDimOp{x: x, out: out, dim: dim, keepDim: keepDim}
}

// Inputs returns the operand node [x].
func (op *MaxDimOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward routes the gradient to the maximal positions along the axis.
func (op *MaxDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	out, g := op.out, outputGrad
	if !op.keepDim {
		out = keepDims(out, op.x.Shape(), op.dim, backend)
		g = keepDims(g, op.x.Shape(), op.dim, backend)
	}
	mask := backend.Equal(op.x.Raw(), out)
	return []*tensor.RawTensor{backend.Mul(mask, g)}
}
