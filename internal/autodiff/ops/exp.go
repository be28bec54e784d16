package ops

import "github.com/aspisov/depth/internal/tensor"

// ExpOp records the element-wise exponential: out = e^x.
//
// Backward:
//
//	grad_x += grad_out * out
//
// The derivative of exp is its own output, so the variant keeps a reference
// to the forward result instead of recomputing it.
type ExpOp struct {
	x   *tensor.Tensor
	out *tensor.RawTensor
}

// NewExpOp creates a new ExpOp.
func NewExpOp(x *tensor.Tensor, out *tensor.RawTensor) *ExpOp {
	return &ExpOp{x: x, out: out}
}

// Inputs returns the operand node [x].
func (op *ExpOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward scales the output gradient by the forward output.
func (op *ExpOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	return []*tensor.RawTensor{backend.Mul(outputGrad, op.out)}
}
