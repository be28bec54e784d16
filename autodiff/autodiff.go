// Copyright 2025 The Depth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public operator library and backward engine.
//
// Operators build a dynamic computation graph; Backward propagates gradients
// through it in reverse dependency order:
//
//	b := cpu.New()
//	x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, b)
//	x.RequireGrad()
//	y, _ := autodiff.Mul(x, x) // y = x²
//	if err := autodiff.Backward(y); err != nil {
//	    // root did not require gradients
//	}
//	_ = x.Grad() // dy/dx = 2x = 4
package autodiff

import (
	"github.com/rs/zerolog"

	"github.com/aspisov/depth/internal/autodiff"
	"github.com/aspisov/depth/internal/tensor"
)

// Backward computes gradients for every ancestor of root that requires them.
// It fails with tensor.ErrGradientDisabled when root does not.
func Backward(root *tensor.Tensor) error {
	return autodiff.Backward(root)
}

// SetLogger installs a structured logger for engine tracing; the default is
// a nop logger.
func SetLogger(l zerolog.Logger) {
	autodiff.SetLogger(l)
}

// Add returns a + b with NumPy-style broadcasting.
func Add(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Sub(a, b) }

// Neg returns -x.
func Neg(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Neg(x) }

// Mul returns the element-wise product a * b with broadcasting.
func Mul(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Mul(a, b) }

// Div returns a / b, defined as a * b^-1.
func Div(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Div(a, b) }

// MatMul returns the 2-D matrix product a @ b.
func MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.MatMul(a, b) }

// Pow raises x element-wise to a constant scalar exponent.
func Pow(x *tensor.Tensor, exponent float64) (*tensor.Tensor, error) {
	return autodiff.Pow(x, exponent)
}

// Sqrt returns the element-wise square root.
func Sqrt(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Sqrt(x) }

// Exp returns the element-wise exponential.
func Exp(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Exp(x) }

// Log returns the element-wise natural logarithm.
func Log(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Log(x) }

// Sum reduces every element to a scalar-shaped tensor.
func Sum(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Sum(x) }

// SumDim sums along one dimension.
func SumDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	return autodiff.SumDim(x, dim, keepDim)
}

// Max reduces every element to the scalar maximum; ties share gradient.
func Max(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Max(x) }

// MaxDim takes the maximum along one dimension.
func MaxDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	return autodiff.MaxDim(x, dim, keepDim)
}

// Mean is the full arithmetic mean.
func Mean(x *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Mean(x) }

// MeanDim takes the mean along one dimension.
func MeanDim(x *tensor.Tensor, dim int, keepDim bool) (*tensor.Tensor, error) {
	return autodiff.MeanDim(x, dim, keepDim)
}

// Var is the variance over all elements; unbiased applies Bessel's
// correction.
func Var(x *tensor.Tensor, unbiased bool) (*tensor.Tensor, error) {
	return autodiff.Var(x, unbiased)
}

// VarDim is the variance along one dimension.
func VarDim(x *tensor.Tensor, dim int, keepDim, unbiased bool) (*tensor.Tensor, error) {
	return autodiff.VarDim(x, dim, keepDim, unbiased)
}

// Gather selects slices of x along dim with a 1-D int64 index tensor.
func Gather(x *tensor.Tensor, dim int, index *tensor.Tensor) (*tensor.Tensor, error) {
	return autodiff.Gather(x, dim, index)
}

// Index subscripts x by leading indices, like x[i] or x[i, j].
func Index(x *tensor.Tensor, indices ...int) (*tensor.Tensor, error) {
	return autodiff.Index(x, indices...)
}

// Slice takes the half-open range x[start:stop] along the leading dimension.
func Slice(x *tensor.Tensor, start, stop int) (*tensor.Tensor, error) {
	return autodiff.Slice(x, start, stop)
}

// Greater compares a > b element-wise and returns a graph-inert 0/1 mask.
func Greater(a, b *tensor.Tensor) (*tensor.Tensor, error) { return autodiff.Greater(a, b) }
