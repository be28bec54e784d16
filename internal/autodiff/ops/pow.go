package ops

import "github.com/aspisov/depth/internal/tensor"

// PowOp records raising a tensor to a constant scalar exponent: out = x^c.
//
// Backward:
//
//	grad_x += grad_out * c * x^(c-1)
type PowOp struct {
	x        *tensor.Tensor
	exponent float64
}

// NewPowOp creates a new PowOp.
func NewPowOp(x *tensor.Tensor, exponent float64) *PowOp {
	return &PowOp{x: x, exponent: exponent}
}

// Inputs returns the operand node [x].
func (op *PowOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward applies the power rule.
func (op *PowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	grad := backend.Mul(outputGrad, backend.Pow(op.x.Raw(), op.exponent-1))
	grad = backend.MulScalar(grad, op.exponent)
	return []*tensor.RawTensor{grad}
}
