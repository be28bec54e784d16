package ops

import "github.com/aspisov/depth/internal/tensor"

// LogOp records the element-wise natural logarithm: out = ln(x).
//
// Backward:
//
//	grad_x += grad_out / x
type LogOp struct {
	x *tensor.Tensor
}

// NewLogOp creates a new LogOp.
func NewLogOp(x *tensor.Tensor) *LogOp {
	return &LogOp{x: x}
}

// Inputs returns the operand node [x].
func (op *LogOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Backward divides the output gradient by the operand's value.
func (op *LogOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	if !op.x.RequiresGrad() {
		return []*tensor.RawTensor{nil}
	}
	return []*tensor.RawTensor{backend.Div(outputGrad, op.x.Raw())}
}
