package autodiff

import (
	"github.com/aspisov/depth/internal/autodiff/ops"
	"github.com/aspisov/depth/internal/tensor"
)

// Sum reduces every element to a scalar-shaped tensor.
func Sum(x *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("sum", x); err != nil {
		return nil, err
	}
	out := x.Backend().Sum(x.Raw())
	return tensor.NewNode(out, x.Backend(), ops.NewSumOp(x)), nil
}

// SumDim sums along one dimension. With keepDim the reduced dimension stays
// as size 1.
func SumDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	if err := checkFloat("sum", x); err != nil {
		return nil, err
	}
	if err := checkDim("sum", x.Shape(), dim); err != nil {
		return nil, err
	}
	out := x.Backend().SumDim(x.Raw(), dim, keepDim)
	return tensor.NewNode(out, x.Backend(), ops.NewSumDimOp(x, dim, keepDim)), nil
}

// Max reduces every element to the scalar maximum. Tied maxima all receive
// gradient during backward.
func Max(x *tensor.Tensor) (*tensor.Tensor, error) {
	if err := checkFloat("max", x); err != nil {
		return nil, err
	}
	out := x.Backend().Max(x.Raw())
	return tensor.NewNode(out, x.Backend(), ops.NewMaxOp(x, out)), nil
}

// MaxDim takes the maximum along one dimension.
func MaxDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	if err := checkFloat("max", x); err != nil {
		return nil, err
	}
	if err := checkDim("max", x.Shape(), dim); err != nil {
		return nil, err
	}
	out := x.Backend().MaxDim(x.Raw(), dim, keepDim)
	return tensor.NewNode(out, x.Backend(), ops.NewMaxDimOp(x, out, dim, keepDim)), nil
}

// Mean is the full arithmetic mean, composed as sum(x) / n.
func Mean(x *tensor.Tensor) (*tensor.Tensor, error) {
	s, err := Sum(x)
	if err != nil {
		return nil, err
	}
	return Mul(s, tensor.Scalar(x.DType(), 1/float64(x.Size()), x.Backend()))
}

// MeanDim takes the mean along one dimension, composed as
// sum(x, dim) / shape[dim].
func MeanDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	s, err := SumDim(x, dim, keepDim)
	if err != nil {
		return nil, err
	}
	return Mul(s, tensor.Scalar(x.DType(), 1/float64(x.Shape()[dim]), x.Backend()))
}

// Var is the full population variance; unbiased applies Bessel's correction.
// Composed from mean, subtraction, squaring and summing.
func Var(x *tensor.Tensor, unbiased bool) (*tensor.Tensor, error) {
	count := x.Size()
	if unbiased {
		count--
	}
	m, err := Mean(x)
	if err != nil {
		return nil, err
	}
	return varianceFrom(x, m, count)
}

// VarDim is the variance along one dimension.
func VarDim(x *tensor.Tensor, dim int, keepDim bool, unbiased bool) (*tensor.Tensor, error) {
	if err := checkDim("var", x.Shape(), dim); err != nil {
		return nil, err
	}
	count := x.Shape()[dim]
	if unbiased {
		count--
	}
	m, err := MeanDim(x, dim, true)
	if err != nil {
		return nil, err
	}
	diff, err := Sub(x, m)
	if err != nil {
		return nil, err
	}
	sq, err := Pow(diff, 2)
	if err != nil {
		return nil, err
	}
	s, err := SumDim(sq, dim, keepDim)
	if err != nil {
		return nil, err
	}
	return Mul(s, tensor.Scalar(x.DType(), 1/float64(count), x.Backend()))
}

func varianceFrom(x, mean *tensor.Tensor, count int) (*tensor.Tensor, error) {
	diff, err := Sub(x, mean)
	if err != nil {
		return nil, err
	}
	sq, err := Pow(diff, 2)
	if err != nil {
		return nil, err
	}
	s, err := Sum(sq)
	if err != nil {
		return nil, err
	}
	return Mul(s, tensor.Scalar(x.DType(), 1/float64(count), x.Backend()))
}
