package ops

import "github.com/aspisov/depth/internal/tensor"

// MatMulOp records 2-D matrix multiplication: out = a @ b.
//
// Backward:
//
//	grad_a += grad_out @ bᵀ
//	grad_b += aᵀ @ grad_out
type MatMulOp struct {
	a, b *tensor.Tensor
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b *tensor.Tensor) *MatMulOp {
	return &MatMulOp{a: a, b: b}
}

// Inputs returns the operand nodes [a, b].
func (op *MatMulOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.a, op.b}
}

// Backward computes the matrix-calculus adjoints.
func (op *MatMulOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, 2)
	if op.a.RequiresGrad() {
		grads[0] = backend.MatMul(outputGrad, backend.Transpose(op.b.Raw()))
	}
	if op.b.RequiresGrad() {
		grads[1] = backend.MatMul(backend.Transpose(op.a.Raw()), outputGrad)
	}
	return grads
}
