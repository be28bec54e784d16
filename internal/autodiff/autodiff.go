// Package autodiff is the graph builder and backward engine. Every operator
// follows one contract: validate operand shapes and types, compute the
// forward result through the math backend, wrap it in a new node whose
// parents are the operands, and attach the operation variant encoding the
// analytic partial derivatives. Operands are never mutated, and a failed
// operator call leaves the graph untouched.
//
// Usage:
//
//	b := cpu.New()
//	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, b)
//	x.RequireGrad()
//	y, _ := autodiff.Mul(x, x) // y = x²
//	_ = autodiff.Backward(y)
//	fmt.Println(y.Grad(), x.Grad()) // dy/dx = 2x = 4
package autodiff

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aspisov/depth/internal/tensor"
)

// logger is nop by default; the library stays silent unless a caller opts in.
var logger = zerolog.Nop()

// SetLogger installs a structured logger for engine tracing.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// checkFloat rejects non-float operands. Only float tensors participate in
// differentiable operations.
func checkFloat(op string, t *tensor.Tensor) error {
	if !t.DType().IsFloat() {
		return &tensor.DTypeError{Op: op,
			Msg: fmt.Sprintf("expected a float tensor, got %s", t.DType())}
	}
	return nil
}

// checkBinary validates a pair of broadcastable float operands of one dtype.
func checkBinary(op string, a, b *tensor.Tensor) error {
	if err := checkFloat(op, a); err != nil {
		return err
	}
	if a.DType() != b.DType() {
		return &tensor.DTypeError{Op: op,
			Msg: fmt.Sprintf("mixed dtypes %s and %s", a.DType(), b.DType())}
	}
	if _, err := tensor.BroadcastShapes(a.Shape(), b.Shape()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// checkDim validates a reduction/gather axis against a shape.
func checkDim(op string, shape tensor.Shape, dim int) error {
	if dim < 0 || dim >= len(shape) {
		return &tensor.ShapeError{Op: op, Shapes: []tensor.Shape{shape.Clone()},
			Msg: fmt.Sprintf("dimension %d out of range", dim)}
	}
	return nil
}
