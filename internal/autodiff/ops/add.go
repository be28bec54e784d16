package ops

import "github.com/aspisov/depth/internal/tensor"

// AddOp records element-wise addition: out = a + b.
//
// Backward:
//
//	grad_a += reduce(grad_out)
//	grad_b += reduce(grad_out)
//
// where reduce undoes any broadcast expansion done in the forward pass.
type AddOp struct {
	a, b *tensor.Tensor
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b *tensor.Tensor) *AddOp {
	return &AddOp{a: a, b: b}
}

// Inputs returns the operand nodes [a, b].
func (op *AddOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.a, op.b}
}

// Backward propagates the output gradient equally to both operands.
func (op *AddOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, 2)
	if op.a.RequiresGrad() {
		grads[0] = reduceBroadcast(outputGrad, op.a.Shape(), backend)
	}
	if op.b.RequiresGrad() {
		grads[1] = reduceBroadcast(outputGrad, op.b.Shape(), backend)
	}
	return grads
}
