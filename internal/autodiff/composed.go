package autodiff

import (
	"github.com/aspisov/depth/internal/tensor"
)

// Neg returns -x, composed as x * -1.
func Neg(x *tensor.Tensor) (*tensor.Tensor, error) {
	return Mul(x, tensor.Scalar(x.DType(), -1, x.Backend()))
}

// Sub returns a - b, composed as a + (-b).
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	nb, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return Add(a, nb)
}

// Div returns a / b, composed as a * b^-1 so the multiply and power rules
// supply the gradient.
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	inv, err := Pow(b, -1)
	if err != nil {
		return nil, err
	}
	return Mul(a, inv)
}

// Sqrt returns the element-wise square root, composed as x^0.5.
func Sqrt(x *tensor.Tensor) (*tensor.Tensor, error) {
	return Pow(x, 0.5)
}

// Greater compares a > b element-wise and returns a 0/1 mask leaf in the
// operands' dtype. Comparisons never build graph edges.
func Greater(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkBinary("greater", a, b); err != nil {
		return nil, err
	}
	mask := a.Backend().Greater(a.Raw(), b.Raw())
	return tensor.New(mask, a.Backend()), nil
}
