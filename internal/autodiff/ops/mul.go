package ops

import "github.com/aspisov/depth/internal/tensor"

// MulOp records element-wise multiplication: out = a * b.
//
// Backward:
//
//	grad_a += reduce(b * grad_out)
//	grad_b += reduce(a * grad_out)
type MulOp struct {
	a, b *tensor.Tensor
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b *tensor.Tensor) *MulOp {
	return &MulOp{a: a, b: b}
}

// Inputs returns the operand nodes [a, b].
func (op *MulOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.a, op.b}
}

// Backward scales the output gradient by the opposite operand's value.
func (op *MulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, 2)
	if op.a.RequiresGrad() {
		grads[0] = reduceBroadcast(backend.Mul(op.b.Raw(), outputGrad), op.a.Shape(), backend)
	}
	if op.b.RequiresGrad() {
		grads[1] = reduceBroadcast(backend.Mul(op.a.Raw(), outputGrad), op.b.Shape(), backend)
	}
	return grads
}
