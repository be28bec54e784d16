package autodiff

import (
	"github.com/aspisov/depth/internal/autodiff/ops"
	"github.com/aspisov/depth/internal/tensor"
)

// Add returns a + b with NumPy-style broadcasting.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary("add", a, b); err != nil {
		return nil, err
	}
	out := a.Backend().Add(a.Raw(), b.Raw())
	return tensor.NewNode(out, a.Backend(), ops.NewAddOp(a, b)), nil
}

// Mul returns the element-wise product a * b with broadcasting.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary("mul", a, b); err != nil {
		return nil, err
	}
	out := a.Backend().Mul(a.Raw(), b.Raw())
	return tensor.NewNode(out, a.Backend(), ops.NewMulOp(a, b)), nil
}

// Pow raises x element-wise to a constant scalar exponent.
func Pow(x *tensor.Tensor, exponent float64) (*tensor.Tensor, error) {
	if err := checkFloat("pow", x); err != nil {
		return nil, err
	}
	out := x.Backend().Pow(x.Raw(), exponent)
	return tensor.NewNode(out, x.Backend(), ops.NewPowOp(x, exponent)), nil
}

// Exp returns the element-wise exponential e^x.
func Exp(x *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("exp", x); err != nil {
		return nil, err
	}
	out := x.Backend().Exp(x.Raw())
	return tensor.NewNode(out, x.Backend(), ops.NewExpOp(x, out)), nil
}

// Log returns the element-wise natural logarithm ln(x).
func Log(x *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("log", x); err != nil {
		return nil, err
	}
	out := x.Backend().Log(x.Raw())
	return tensor.NewNode(out, x.Backend(), ops.NewLogOp(x)), nil
}

// MatMul returns the 2-D matrix product a @ b.
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("matmul", a); err != nil {
		return nil, err
	}
	if a.DType() != b.DType() {
		return nil, &tensor.DTypeError{Op: "matmul",
			Msg: "mixed dtypes " + a.DType().String() + " and " + b.DType().String()}
	}
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		return nil, &tensor.ShapeError{Op: "matmul",
			Shapes: []tensor.Shape{aShape.Clone(), bShape.Clone()},
			Msg:    "both operands must be 2-D"}
	}
	if aShape[1] != bShape[0] {
		return nil, &tensor.ShapeError{Op: "matmul",
			Shapes: []tensor.Shape{aShape.Clone(), bShape.Clone()},
			Msg:    "inner dimensions differ"}
	}
	out := a.Backend().MatMul(a.Raw(), b.Raw())
	return tensor.NewNode(out, a.Backend(), ops.NewMatMulOp(a, b)), nil
}
